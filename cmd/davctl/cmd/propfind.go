package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/davmeta/element"
	"github.com/xxxsen/davmeta/lock"
	"github.com/xxxsen/davmeta/propfind"
	"go.uber.org/zap"
)

type propfindArgs struct {
	path  string
	depth string
}

func NewPropfindCmd(c *Context) *cobra.Command {
	args := &propfindArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "propfind",
		Short: "Print the multistatus of a path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunPropfind(ctx, c, args, cmd.OutOrStdout())
		},
	}
	subc.Flags().StringVarP(&args.path, "path", "p", "/", "path relative to root")
	subc.Flags().StringVarP(&args.depth, "depth", "d", "1", "depth: 0, 1 or infinity")
	return subc
}

func onRunPropfind(ctx context.Context, c *Context, args *propfindArgs, w io.Writer) error {
	depth, err := lock.ParseDepth(args.depth)
	if err != nil {
		return err
	}
	start := time.Now()
	b := propfind.New(c.Providor, propfind.WithConcurrency(c.Config.Concurrency))
	ms, err := b.Build(ctx, args.path, depth)
	if err != nil {
		return fmt.Errorf("build multistatus failed, path:%s, err:%w", args.path, err)
	}
	cw := &countWriter{w: w}
	if err := element.Encode(cw, ms, element.WithHeader(), element.WithIndent("", "  ")); err != nil {
		return fmt.Errorf("encode multistatus failed, err:%w", err)
	}
	_, _ = io.WriteString(cw, "\n")
	logutil.GetLogger(ctx).Debug("propfind finish", zap.String("path", args.path), zap.String("depth", depth.String()),
		zap.Int("responses", len(ms.ChildElements())), zap.String("size", humanize.IBytes(uint64(cw.n))),
		zap.Duration("cost", time.Since(start)))
	return nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func init() {
	register(NewPropfindCmd)
}
