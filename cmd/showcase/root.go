package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eringen/showcase"
)

const envPrefix = "SHOWCASE"

// options are the persistent flags shared by every command.
type options struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "showcase",
		Short: "showcase - a blog and project showcase built with Go, Echo, and templ",
		Long: `showcase serves Markdown posts as a searchable, tag-filterable blog.

Configuration is read from config.yaml, then .env, then SHOWCASE_*
environment variables, then command flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newServeCmd(opts),
		newPostsCmd(opts),
		newNewCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig resolves the site configuration. flags, when non-nil, are bound
// over the file and environment values.
func loadConfig(opts *options, flags map[string]*pflag.Flag) (showcase.SiteConfig, error) {
	var cfg showcase.SiteConfig

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load environment from %s: %w", opts.envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("name", "GeeksHub")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "A curated collection of technical blogs and projects.")
	v.SetDefault("author", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("content_dir", "content/posts")
	v.SetDefault("static_dir", "public")
	v.SetDefault("session_secret", "")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("cache_ttl", "1m")
	v.SetDefault("search_limit", 60)
	v.SetDefault("search_window", "1m")

	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, flag := range flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return cfg, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.configFile != "" {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the showcase version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "showcase %s\n", version)
		},
	}
}
