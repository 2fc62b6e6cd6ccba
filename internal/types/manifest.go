package types

// Manifest is a batch of named constraints sharing one source grammar.
// The target grammar is implied: there are exactly two grammars, so a
// manifest always translates into the other one.
type Manifest struct {
	Source       Grammar           `yaml:"source"`
	Dependencies map[string]string `yaml:"dependencies"`
}
