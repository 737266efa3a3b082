package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	instance   *viper.Viper
	opts       ConfigOptions
	watchOnce  sync.Once
	bindOnce   sync.Once
	watchMutex sync.RWMutex // guards instance and listeners

	watcher   *viper.Viper // only triggers reloads
	listeners []func(e fsnotify.Event)
}

type ConfigOptions struct {
	BasePath  string
	FileName  string
	FileType  string
	EnvPrefix string
	WatchAble bool
	OnChange  func(e fsnotify.Event)
}
