package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PathEnvKey overrides the default configuration directory.
const PathEnvKey = "CONFIG_PATH"

func DefaultConfigOptions() ConfigOptions {
	basePath := os.Getenv(PathEnvKey)
	if basePath == "" {
		basePath = "config"
	}

	return ConfigOptions{
		BasePath:  basePath,
		FileName:  "config",
		FileType:  "yaml",
		EnvPrefix: "",
		WatchAble: false,
		OnChange:  nil,
	}
}

func DevConfigOptions() ConfigOptions {
	opts := DefaultConfigOptions()
	opts.WatchAble = true
	return opts
}

// FileConfigOptions loads exactly one file, e.g. a path passed on the command line.
func FileConfigOptions(path string) ConfigOptions {
	opts := DefaultConfigOptions()
	opts.BasePath = filepath.Dir(path)
	ext := filepath.Ext(path)
	opts.FileName = strings.TrimSuffix(filepath.Base(path), ext)
	if ext != "" {
		opts.FileType = strings.TrimPrefix(ext, ".")
	}
	return opts
}

func NewConfig(optsArr ...ConfigOptions) (*Config, error) {
	var opts ConfigOptions
	if len(optsArr) == 0 {
		opts = DefaultConfigOptions()
	} else {
		opts = optsArr[0]
	}

	instance, err := CreateConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Config{
		instance: instance,
		opts:     opts,
	}, nil
}

// Bind decodes the configuration into instance, a pointer. With WatchAble set, the
// first bound instance is re-decoded whenever a loaded file changes.
func (c *Config) Bind(instance any) error {
	if c == nil || c.instance == nil {
		return fmt.Errorf("❌ Config instance is nil")
	}

	if instance == nil {
		return fmt.Errorf("❌ Target instance is nil")
	}

	c.watchMutex.Lock()
	err := c.instance.Unmarshal(instance)
	c.watchMutex.Unlock()
	if err != nil {
		return fmt.Errorf("❌ Failed to unmarshal config (path: %s, file: %s.%s): %w",
			c.opts.BasePath, c.opts.FileName, c.opts.FileType, err)
	}

	if c.opts.WatchAble {
		c.bindOnce.Do(func() {
			c.Watch(func(fsnotify.Event) {
				c.watchMutex.Lock()
				defer c.watchMutex.Unlock()
				if err := c.instance.Unmarshal(instance); err != nil {
					fmt.Fprintf(os.Stderr, "❌ Config watch error: %v\n", err)
				}
			})
		})
	}

	return nil
}

// Watch starts watching the most specific loaded file and calls fn after every
// change, once the merged configuration has been reloaded. Listeners run in
// registration order, before ConfigOptions.OnChange.
func (c *Config) Watch(fn func(e fsnotify.Event)) {
	c.watchMutex.Lock()
	c.listeners = append(c.listeners, fn)
	c.watchMutex.Unlock()

	c.watchOnce.Do(func() {
		files := c.Files()
		if len(files) == 0 {
			return
		}
		c.watcher = viper.New()
		c.watcher.SetConfigFile(files[len(files)-1])
		c.watcher.OnConfigChange(c.reload)
		c.watcher.WatchConfig()
	})
}

// reload rebuilds the merged view from every file, since a single-file re-read
// would not override values merged from the other files.
func (c *Config) reload(e fsnotify.Event) {
	fresh, err := CreateConfig(c.opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Config reload error: %v\n", err)
		return
	}

	c.watchMutex.Lock()
	c.instance = fresh
	listeners := append(([]func(fsnotify.Event))(nil), c.listeners...)
	c.watchMutex.Unlock()

	for _, fn := range listeners {
		fn(e)
	}
	if c.opts.OnChange != nil {
		c.opts.OnChange(e)
	}
}

// BindWithDefaults applies `default` struct tags around Bind so missing keys keep
// their defaults.
func (c *Config) BindWithDefaults(instance any) error {
	if err := defaults.Set(instance); err != nil {
		return fmt.Errorf("❌ Failed to set defaults: %w", err)
	}

	if err := c.Bind(instance); err != nil {
		return err
	}

	if err := defaults.Set(instance); err != nil {
		return fmt.Errorf("❌ Failed to set defaults after unmarshal: %w", err)
	}

	return nil
}

// Files returns the configuration files that were merged, lowest priority first.
func (c *Config) Files() []string {
	return getConfigFilePaths(c.opts)
}

func (c *Config) Get(key string) any {
	c.watchMutex.RLock()
	defer c.watchMutex.RUnlock()

	return c.instance.Get(key)
}

// CreateConfig merges every matching file into one viper instance. Later files win,
// and environment variables win over files.
func CreateConfig(opts ConfigOptions) (*viper.Viper, error) {
	configPaths := getConfigFilePaths(opts)
	if len(configPaths) == 0 {
		return nil, fmt.Errorf("❌ No valid configuration files found in path: %s", opts.BasePath)
	}

	v := viper.New()
	v.SetConfigType(opts.FileType)

	for i, configPath := range configPaths {
		tempV := viper.New()
		tempV.SetConfigFile(configPath)
		if err := tempV.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("❌ Error reading config file %s: %w", configPath, err)
		}

		// The watched file is the most specific one.
		if i == len(configPaths)-1 {
			v.SetConfigFile(configPath)
		}

		for _, key := range tempV.AllKeys() {
			v.Set(key, tempV.Get(key))
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
	}
	v.AutomaticEnv()

	applyEnvOverrides(v, opts.EnvPrefix)

	return v, nil
}

// applyEnvOverrides checks all config keys and overrides with environment variables if they exist.
func applyEnvOverrides(v *viper.Viper, envPrefix string) {
	replacer := strings.NewReplacer(".", "_")

	for _, key := range v.AllKeys() {
		// database.host -> DATABASE_HOST
		envKey := strings.ToUpper(replacer.Replace(key))
		if envPrefix != "" {
			envKey = envPrefix + "_" + envKey
		}

		if envValue := os.Getenv(envKey); envValue != "" {
			v.Set(key, envValue)
		}
	}
}

func getConfigFilePaths(opts ConfigOptions) (configFiles []string) {
	fileNames := []string{
		opts.FileName,
		fmt.Sprintf("%s.local", opts.FileName),
	}
	for _, suffix := range CurrentMode().suffixes() {
		fileNames = append(fileNames,
			fmt.Sprintf("%s.%s", opts.FileName, suffix),
			fmt.Sprintf("%s.%s.local", opts.FileName, suffix),
		)
	}

	for _, fileName := range fileNames {
		file := filepath.Join(opts.BasePath, fmt.Sprintf("%s.%s", fileName, opts.FileType))
		if fileExists(file) {
			configFiles = append(configFiles, file)
		}
	}

	return configFiles
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
