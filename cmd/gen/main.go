package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.KeyValueModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
