package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/mindful-notes/persistence/v1/schema"
	"github.com/ribgsilva/mindful-notes/platform/bootstrap"
	"github.com/ribgsilva/mindful-notes/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Schema Commands")
	println("\tcreate\t\t\t- Creates the schema")
	println("\tdelete\t\t\t- Deletes the schema")
	println("\thelp\t\t\t- Print the commands available")
}

// Run executes the schema command named by options, listing the commands when there is none
func Run(options []string) error {
	if len(options) == 0 {
		ListCommands()
		return nil
	}
	// empty logger
	log := zap.NewNop().Sugar()
	closeDB, err := initVars(log)
	if err != nil {
		return err
	}
	defer closeDB()

	switch options[0] {
	case "create":
		println("creating schema")
		if err := schema.Create(context.Background()); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		println("created schema")
	case "delete":
		println("deleting schema")
		if err := schema.Drop(context.Background()); err != nil {
			return fmt.Errorf("failed to delete schema: %w", err)
		}
		println("deleted schema")
	case "help":
		fallthrough
	default:
		ListCommands()
	}
	return nil
}

func initVars(log *zap.SugaredLogger) (func(), error) {
	bootstrap.DatabaseConfigs(log)

	// logger
	sys.R.Log = log

	return bootstrap.Database(log)
}
