package modules

import (
	"lolatlas/api/handlers"
	buildservice "lolatlas/api/services/build"
)

func initializeBuildHandler(deps *ModuleDependencies) *handlers.BuildHandler {
	buildDeps := &buildservice.BuildServiceDeps{
		State:    deps.State,
		Sessions: deps.BuildMemCache,
		MaxItems: deps.Builder.MaxItems,
		Level:    deps.Builder.ReferenceLevel,
		TTL:      deps.Builder.SessionTTL,
	}

	buildService := buildservice.NewBuildService(buildDeps)

	buildHandlerDeps := &handlers.BuildHandlerDependencies{
		BuildService: buildService,
	}

	return handlers.NewBuildHandler(buildHandlerDeps)
}
