package modules

import (
	catalogservice "lolatlas/api/services/catalog"
)

func initializeCatalogService(deps *ModuleDependencies) *catalogservice.CatalogService {
	catalogDeps := &catalogservice.CatalogServiceDeps{
		State:    deps.State,
		Fetcher:  deps.Fetcher,
		Details:  deps.Details,
		MemCache: deps.ChampionMemCache,
		CDN:      deps.CDN,
	}

	return catalogservice.NewCatalogService(catalogDeps)
}
