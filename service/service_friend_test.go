package service

// This set of methods is only available when testing so tests can
// access internal CatalogSync struct fields.

import (
	"time"
)

func (svc *CatalogSync) GetStore() Store {
	return svc.store
}

func (svc *CatalogSync) GetCatalogClient() CatalogClient {
	return svc.catalog
}

func (svc *CatalogSync) GetShutdownTimeout() time.Duration {
	return svc.shutdown
}

func (svc *CatalogSync) GetHealthChecker() HealthChecker {
	return svc.healthCheck
}
