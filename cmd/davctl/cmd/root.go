package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	cachewrap "github.com/xxxsen/davmeta/cacheapi/adaptor"
	"github.com/xxxsen/davmeta/config"
	"github.com/xxxsen/davmeta/lock"
	"github.com/xxxsen/davmeta/resource"
	"go.uber.org/zap"
)

const (
	defaultConfigFileEnv = "DAVCTL_CONFIG"
)

var cmds []CreateFunc

type Context struct {
	Config   *config.Config
	Providor resource.IResourceProvidor
}

type CreateFunc func(ctx *Context) *cobra.Command

func register(cr CreateFunc) {
	cmds = append(cmds, cr)
}

func loadConfig(file string) (*config.Config, error) {
	if len(file) == 0 {
		file, _ = os.LookupEnv(defaultConfigFileEnv)
	}
	if len(file) == 0 {
		return config.Default(), nil
	}
	return config.Parse(file)
}

func buildProvidor(c *config.Config) (resource.IResourceProvidor, error) {
	opts := []resource.Option{
		resource.WithLockManager(lock.NewMemLockManager(lock.WithShardCount(c.LockShards))),
	}
	if c.Cache.Enable {
		cc, err := cachewrap.New[string, resource.IResource](c.Cache.Kind, c.Cache.Size, time.Duration(c.Cache.TTL)*time.Second)
		if err != nil {
			return nil, fmt.Errorf("init stat cache failed, err:%w", err)
		}
		opts = append(opts, resource.WithCache(cc))
	}
	return resource.NewFileResourceProvidor(c.Root, opts...)
}

func initContext(ctx *Context, file string, root string) error {
	c, err := loadConfig(file)
	if err != nil {
		return fmt.Errorf("load config failed, err:%w", err)
	}
	if len(root) != 0 {
		c.Root = root
	}
	logitem := c.LogInfo
	lg := logger.Init(logitem.File, logitem.Level, int(logitem.FileCount), int(logitem.FileSize), int(logitem.KeepDays), logitem.Console)
	lg.Debug("recv config", zap.Any("config", c))
	lg.Debug("-- stat cache", zap.Bool("enable", c.Cache.Enable), zap.String("kind", c.Cache.Kind),
		zap.String("max_entries", humanize.Comma(c.Cache.Size)))
	p, err := buildProvidor(c)
	if err != nil {
		return err
	}
	ctx.Config = c
	ctx.Providor = p
	return nil
}

func NewRoot() *cobra.Command {
	var configFile string
	var root string
	ctx := &Context{}
	rootCmd := &cobra.Command{
		Use:          "davctl",
		Short:        "Inspect WebDAV properties and locks of a published directory",
		SilenceUsage: true,
	}
	for _, cr := range cmds {
		rootCmd.AddCommand(cr(ctx))
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initContext(ctx, configFile, root)
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVarP(&root, "root", "r", "", "root to publish, overrides config")
	return rootCmd
}
