package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tabledrv "github.com/lakedocs/lakedocs/adapters/drivers/table"
	"github.com/lakedocs/lakedocs/adapters/fabric"
	"github.com/lakedocs/lakedocs/config/lakedocscfg"
	"github.com/lakedocs/lakedocs/internal/azauth"
	"github.com/lakedocs/lakedocs/usecase/catalog"
	"github.com/lakedocs/lakedocs/usecase/schema"
)

// deps bundles everything an entry surface needs: one credential holder,
// one API client, and the use cases over them.
type deps struct {
	Config  *lakedocscfg.Root
	Holder  *azauth.Holder
	Client  *fabric.Client
	Catalog *catalog.UseCase
	Schemas *schema.UseCase
}

// buildDeps loads configuration from the --config flag (or defaults),
// constructs the shared credential holder, and wires the use cases.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	var cfg *lakedocscfg.Root
	var err error
	if cfgPath != "" {
		cfg, err = lakedocscfg.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = lakedocscfg.Default()
	}

	holder := azauth.NewHolder(cfg.Auth)
	cred, err := holder.Credential()
	if err != nil {
		return nil, fmt.Errorf("initialize Azure credential: %w", err)
	}
	client := fabric.NewClient(cred, &fabric.Options{API: cfg.API})

	factory, ok := tabledrv.GetDriverFactory("delta")
	if !ok {
		return nil, fmt.Errorf("table reader driver %q is not registered", "delta")
	}
	reader, err := factory()
	if err != nil {
		return nil, fmt.Errorf("initialize table reader: %w", err)
	}

	return &deps{
		Config:  cfg,
		Holder:  holder,
		Client:  client,
		Catalog: &catalog.UseCase{Client: client},
		Schemas: &schema.UseCase{Client: client, Tokens: holder, Reader: reader},
	}, nil
}
