// Copyright 2026 predict-heart-disease Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/juju/errors"
	"github.com/rushikeshdhumal/predict-heart-disease/base/log"
	"github.com/rushikeshdhumal/predict-heart-disease/cmd/version"
	"github.com/rushikeshdhumal/predict-heart-disease/common/datautil"
	"github.com/rushikeshdhumal/predict-heart-disease/config"
	"github.com/rushikeshdhumal/predict-heart-disease/dataset"
	"github.com/rushikeshdhumal/predict-heart-disease/storage/blob"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCommand = &cobra.Command{
	Use:   "heart-data",
	Short: "Download and inspect the heart disease competition dataset.",
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}

		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)
		defer log.CloseLogger()

		// load config
		configPath, _ := cmd.PersistentFlags().GetString("config")
		log.Logger().Debug("load config", zap.String("config", configPath))
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
		if cmd.PersistentFlags().Changed("data-dir") {
			conf.Dataset.Dir, _ = cmd.PersistentFlags().GetString("data-dir")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err = run(ctx, conf, os.Stdout, os.Stderr); err != nil {
			log.Logger().Fatal("failed to prepare dataset", zap.Error(err))
		}
	},
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().BoolP("version", "v", false, "heart-data version")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCommand.PersistentFlags().String("data-dir", "",
		"directory of raw files (default <install root>/data/raw, pass it explicitly under go run)")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}

// run acquires the raw files, loads them and writes the report to out.
// Extraction progress goes to progress.
func run(ctx context.Context, conf *config.Config, out, progress io.Writer) error {
	dir := datautil.ResolveDir(conf.Dataset.Dir)
	files := conf.Dataset.Files()

	// open mirror
	mirror, err := blob.Open(conf.Mirror)
	if err != nil {
		return errors.Annotate(err, "failed to open mirror")
	}
	if mirror != nil && conf.Mirror.Pull {
		n, err := blob.Pull(ctx, mirror, dir, files...)
		if err != nil {
			return errors.Trace(err)
		}
		log.Logger().Info("pull dataset from mirror", zap.String("type", conf.Mirror.Type), zap.Int("files", n))
	}

	// acquire raw files
	acquirer := datautil.NewAcquirer(conf)
	acquirer.Progress = progress
	status, err := acquirer.Acquire(ctx, dir)
	if err != nil {
		return err
	}
	log.Logger().Debug("acquire dataset", zap.Stringer("status", status))

	if mirror != nil && conf.Mirror.Push {
		if err = blob.Push(ctx, mirror, dir, files...); err != nil {
			return errors.Trace(err)
		}
	}

	// load tables
	train, test, err := dataset.NewLoader(conf).Load(ctx, dir)
	if err != nil {
		return err
	}
	return report(out, conf.Report.LabelColumn, train, test)
}
