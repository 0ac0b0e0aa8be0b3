package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"paisalocal/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
