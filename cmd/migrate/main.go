// migrate aplica las migraciones SQL embebidas: go run ./cmd/migrate [-direction up|down]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tu-usuario/creators-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/creators-api/pkg/config"
)

func main() {
	direction := flag.String("direction", "up", "dirección de la migración: up o down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(cfg.DB.ConnectionString(), *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	fmt.Println("migraciones aplicadas")
}
