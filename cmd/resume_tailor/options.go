package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/spf13/cobra"
)

// inputFlags are shared by every command that reads a knowledge base and a job description
type inputFlags struct {
	configPath string
	kb         string
	jd         string
	verbose    bool
	timeout    time.Duration
	userAgent  string
	limits     types.Limits
}

func (f *inputFlags) register(cmd *cobra.Command) {
	defaults := types.DefaultLimits()

	// Config file flag (processed first)
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (defaults to $"+config.EnvConfigPath+"; values can be overridden by other flags)")

	cmd.Flags().StringVarP(&f.kb, "kb", "k", "", "Path to knowledge base JSON file")
	cmd.Flags().StringVarP(&f.jd, "jd", "j", "", "Path or URL of the job description")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
	cmd.Flags().DurationVar(&f.timeout, "timeout", fetch.DefaultTimeout, "HTTP timeout when the job description is a URL")
	cmd.Flags().StringVar(&f.userAgent, "user-agent", fetch.DefaultUserAgent, "User-Agent header when the job description is a URL")

	cmd.Flags().IntVar(&f.limits.Skills, "skills", defaults.Skills, "Maximum skills to include")
	cmd.Flags().IntVar(&f.limits.Projects, "projects", defaults.Projects, "Maximum projects to include")
	cmd.Flags().IntVar(&f.limits.Experience, "experience", defaults.Experience, "Maximum experience entries to include")
	cmd.Flags().IntVar(&f.limits.Certificates, "certificates", defaults.Certificates, "Maximum certificates to include")
	cmd.Flags().IntVar(&f.limits.Education, "education", defaults.Education, "Maximum education entries to include")
}

// resolveConfig layers explicitly set flags over the config file.
// Limits not set by either fall back to types.DefaultLimits.
func resolveConfig(cmd *cobra.Command, f *inputFlags, extra func(cfg *config.Config)) (config.Config, error) {
	// Step 1: Load config file if provided
	var fileCfg config.Config
	configPath := f.configPath
	if configPath == "" {
		configPath = os.Getenv(config.EnvConfigPath)
	}
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		fileCfg = *loadedCfg
		if f.verbose {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded config from: %s\n", configPath)
		}
	}

	// Step 2: Collect command-line args (only those explicitly set)
	var flagCfg config.Config
	flags := cmd.Flags()
	if flags.Changed("kb") {
		flagCfg.KB = f.kb
	}
	if flags.Changed("jd") {
		if fetch.IsURL(f.jd) {
			flagCfg.JDURL = f.jd
		} else {
			flagCfg.JD = f.jd
		}
	}
	if flags.Changed("skills") {
		flagCfg.Limits.Skills = &f.limits.Skills
	}
	if flags.Changed("projects") {
		flagCfg.Limits.Projects = &f.limits.Projects
	}
	if flags.Changed("experience") {
		flagCfg.Limits.Experience = &f.limits.Experience
	}
	if flags.Changed("certificates") {
		flagCfg.Limits.Certificates = &f.limits.Certificates
	}
	if flags.Changed("education") {
		flagCfg.Limits.Education = &f.limits.Education
	}
	if extra != nil {
		extra(&flagCfg)
	}

	// Step 3: Command-line args win over the config file
	cfg := flagCfg.MergeWithDefaults(fileCfg)
	cfg.Verbose = fileCfg.Verbose
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if cfg.Format == "" {
		cfg.Format = rendering.DefaultFormat
	}

	// Step 4: Validate required fields
	if cfg.KB == "" {
		return config.Config{}, fmt.Errorf("--kb is required (via flag or config)")
	}
	if cfg.JobSource() == "" {
		return config.Config{}, fmt.Errorf("--jd is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func (f *inputFlags) fetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if f.timeout > 0 {
		opts.Timeout = f.timeout
	}
	if f.userAgent != "" {
		opts.UserAgent = f.userAgent
	}
	return opts
}
