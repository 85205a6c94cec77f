package repository

import (
	"github.com/google/wire"

	"fixster-server/internal/infrastructure/database/repository/projectrepo"
	"fixster-server/internal/infrastructure/database/repository/snippetrepo"
	"fixster-server/internal/infrastructure/database/repository/usersettingsrepo"
)

var RepositoryProvider = wire.NewSet(
	projectrepo.NewProjectGormRepository,
	snippetrepo.NewSnippetGormRepository,
	usersettingsrepo.NewUserSettingsGormRepository,
)
