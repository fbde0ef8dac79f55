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

package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

const (
	DefaultCompetition = "playground-series-s6e2"
	DefaultTrainFile   = "train.csv"
	DefaultTestFile    = "test.csv"
	DefaultLabelColumn = "Heart Disease"
)

// Config is the configuration of the dataset utility.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Kaggle  KaggleConfig  `mapstructure:"kaggle"`
	Report  ReportConfig  `mapstructure:"report"`
	Mirror  MirrorConfig  `mapstructure:"mirror"`
}

// DatasetConfig describes where the raw files live. An empty Dir selects the
// default directory under the installation root.
type DatasetConfig struct {
	Dir       string `mapstructure:"dir"`
	TrainFile string `mapstructure:"train_file" validate:"required,excludes=/"`
	TestFile  string `mapstructure:"test_file" validate:"required,excludes=/,nefield=TrainFile"`
}

// Files returns the raw file names, training set first.
func (c DatasetConfig) Files() []string {
	return []string{c.TrainFile, c.TestFile}
}

// KaggleConfig describes the download command.
type KaggleConfig struct {
	Command     string `mapstructure:"command" validate:"required"`
	Competition string `mapstructure:"competition" validate:"required"`
	Archive     string `mapstructure:"archive" validate:"required,excludes=/"`
}

type ReportConfig struct {
	LabelColumn string `mapstructure:"label_column"`
}

// MirrorConfig selects an optional object store holding copies of the raw files.
type MirrorConfig struct {
	Type      string          `mapstructure:"type" validate:"omitempty,oneof=posix s3 gcs azure"`
	Pull      bool            `mapstructure:"pull"`
	Push      bool            `mapstructure:"push"`
	Dir       string          `mapstructure:"dir" validate:"required_if=Type posix"`
	S3        S3Config        `mapstructure:"s3"`
	GCS       GCSConfig       `mapstructure:"gcs"`
	AzureBlob AzureBlobConfig `mapstructure:"azure"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
}

type GCSConfig struct {
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type AzureBlobConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	AccountName      string `mapstructure:"account_name"`
	AccountKey       string `mapstructure:"account_key"`
	Endpoint         string `mapstructure:"endpoint"`
	Container        string `mapstructure:"container"`
	Prefix           string `mapstructure:"prefix"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			TrainFile: DefaultTrainFile,
			TestFile:  DefaultTestFile,
		},
		Kaggle: KaggleConfig{
			Command:     "kaggle",
			Competition: DefaultCompetition,
			Archive:     DefaultCompetition + ".zip",
		},
		Report: ReportConfig{
			LabelColumn: DefaultLabelColumn,
		},
	}
}

func (config *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return errors.Trace(err)
	}
	switch config.Mirror.Type {
	case "s3":
		if config.Mirror.S3.Endpoint == "" || config.Mirror.S3.Bucket == "" {
			return errors.New("s3 mirror requires endpoint and bucket")
		}
	case "gcs":
		if config.Mirror.GCS.Bucket == "" {
			return errors.New("gcs mirror requires bucket")
		}
	case "azure":
		if config.Mirror.AzureBlob.Container == "" {
			return errors.New("azure mirror requires container")
		}
	}
	return nil
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [dataset]
	v.SetDefault("dataset.dir", defaultConfig.Dataset.Dir)
	v.SetDefault("dataset.train_file", defaultConfig.Dataset.TrainFile)
	v.SetDefault("dataset.test_file", defaultConfig.Dataset.TestFile)
	// [kaggle]
	v.SetDefault("kaggle.command", defaultConfig.Kaggle.Command)
	v.SetDefault("kaggle.competition", defaultConfig.Kaggle.Competition)
	v.SetDefault("kaggle.archive", defaultConfig.Kaggle.Archive)
	// [report]
	v.SetDefault("report.label_column", defaultConfig.Report.LabelColumn)
	// [mirror]
	v.SetDefault("mirror.type", "")
	v.SetDefault("mirror.pull", false)
	v.SetDefault("mirror.push", false)
	v.SetDefault("mirror.dir", "")
	v.SetDefault("mirror.s3.use_ssl", true)
}

type configBinding struct {
	key string
	env string
}

// LoadConfig loads configuration from a TOML file. An empty path loads the
// defaults together with environment overrides.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)

	// bind environment bindings
	bindings := []configBinding{
		{"dataset.dir", "HEART_DATA_DIR"},
		{"kaggle.command", "HEART_KAGGLE_COMMAND"},
		{"kaggle.competition", "HEART_KAGGLE_COMPETITION"},
		{"report.label_column", "HEART_LABEL_COLUMN"},
		{"mirror.type", "HEART_MIRROR_TYPE"},
		{"mirror.dir", "HEART_MIRROR_DIR"},
		{"mirror.s3.endpoint", "S3_ENDPOINT"},
		{"mirror.s3.access_key_id", "S3_ACCESS_KEY_ID"},
		{"mirror.s3.secret_access_key", "S3_SECRET_ACCESS_KEY"},
		{"mirror.gcs.credentials_file", "GOOGLE_APPLICATION_CREDENTIALS"},
		{"mirror.azure.connection_string", "AZURE_STORAGE_CONNECTION_STRING"},
		{"mirror.azure.account_name", "AZURE_STORAGE_ACCOUNT"},
		{"mirror.azure.account_key", "AZURE_STORAGE_KEY"},
	}
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, errors.Trace(err)
		}
	}

	// load config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}

	// unmarshal config file
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}
