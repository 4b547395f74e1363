// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Command featsink-provision readies the BigQuery destination for a
// feature-ingestion run from entity/feature/storage spec files.
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"

	help "github.com/featsink/featsink/helpers"
	"github.com/featsink/featsink/logging"
	"github.com/featsink/featsink/provider"
	pc "github.com/featsink/featsink/provider/provider_config"
	"github.com/featsink/featsink/specs"
)

func main() {
	entityPath := flag.String("entity", help.GetEnv("ENTITY_SPEC_PATH", "entity.yaml"), "path to the entity spec file")
	featuresPath := flag.String("features", help.GetEnv("FEATURE_SPEC_PATH", "features.yaml"), "path to the feature specs file")
	storagePath := flag.String("storage", help.GetEnv("STORAGE_SPEC_PATH", "storage.yaml"), "path to the storage spec file")
	flag.Parse()

	logger := logging.NewLogger("featsink-provision")
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not loaded, relying on ambient environment")
	}

	entity, err := specs.LoadEntitySpec(*entityPath)
	if err != nil {
		logger.Fatalw("Failed to load entity spec", "path", *entityPath, "err", err)
	}
	features, err := specs.LoadFeatureSpecs(*featuresPath)
	if err != nil {
		logger.Fatalw("Failed to load feature specs", "path", *featuresPath, "err", err)
	}
	storage, err := specs.LoadStorageSpec(*storagePath)
	if err != nil {
		logger.Fatalw("Failed to load storage spec", "path", *storagePath, "err", err)
	}
	if storage.Type != "" && storage.Type != string(pc.BigQuery) {
		logger.Fatalw("Unsupported storage type", "type", storage.Type)
	}

	config, err := pc.BigQueryConfigFromOptions(storage.Options)
	if err != nil {
		logger.Fatalw("Invalid storage spec options", "err", err)
	}

	ctx := context.Background()
	client, err := provider.NewBQClient(ctx, config)
	if err != nil {
		logger.Fatalw("Failed to create BigQuery client", "err", err)
	}
	defer client.Close()

	logger = logger.WithRequestID(logging.NewRequestID()).WithEntity(entity.Name)
	logger.Infow("Provisioning warehouse destination", "dataset", config.DatasetId)
	if err := provider.EnsureDestination(ctx, storage, entity, features, client, logger); err != nil {
		logger.Fatalw("Failed to provision destination", "err", err)
	}
	logger.Info("Destination ready")
}
