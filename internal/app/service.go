package app

import (
	"rangeconv/internal/adapters"
	"rangeconv/internal/ports"
)

type Service struct {
	Manifest ports.ManifestPort
}

func NewService() Service {
	return Service{
		Manifest: adapters.NewManifestFileAdapter(),
	}
}
