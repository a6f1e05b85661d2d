package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/davmeta/davxml"
	"github.com/xxxsen/davmeta/element"
	"github.com/xxxsen/davmeta/lock"
	"github.com/xxxsen/davmeta/propfind"
	"go.uber.org/zap"
)

type lockArgs struct {
	path    string
	typ     string
	scope   string
	release bool
}

func NewLockCmd(c *Context) *cobra.Command {
	args := &lockArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "lock",
		Short: "Lock a path and print its lockdiscovery",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunLock(ctx, c, args, cmd.OutOrStdout())
		},
	}
	subc.Flags().StringVarP(&args.path, "path", "p", "", "path relative to root")
	subc.Flags().StringVarP(&args.typ, "type", "t", "write", "lock type: read or write")
	subc.Flags().StringVarP(&args.scope, "scope", "s", "exclusive", "lock scope: exclusive, shared or none")
	subc.Flags().BoolVar(&args.release, "release", false, "unlock again after printing")
	return subc
}

func parseLockType(v string) (lock.Type, error) {
	switch v {
	case "read":
		return lock.TypeRead, nil
	case "write":
		return lock.TypeWrite, nil
	}
	return lock.TypeWrite, fmt.Errorf("invalid lock type:%s", v)
}

func parseLockScope(v string) (lock.Scope, error) {
	switch v {
	case "exclusive":
		return lock.ScopeExclusive, nil
	case "shared":
		return lock.ScopeShared, nil
	case "none":
		return lock.ScopeNone, nil
	}
	return lock.ScopeExclusive, fmt.Errorf("invalid lock scope:%s", v)
}

func onRunLock(ctx context.Context, c *Context, args *lockArgs, w io.Writer) error {
	if len(args.path) == 0 {
		return fmt.Errorf("no lock path found")
	}
	typ, err := parseLockType(args.typ)
	if err != nil {
		return err
	}
	scope, err := parseLockScope(args.scope)
	if err != nil {
		return err
	}
	r, err := c.Providor.ResolveResource(ctx, args.path)
	if err != nil {
		return fmt.Errorf("resolve resource failed, err:%w", err)
	}
	lm := c.Providor.LockManager()
	lk, err := lm.Lock(ctx, r, typ, scope)
	if err != nil {
		return fmt.Errorf("lock resource failed, err:%w", err)
	}
	al, err := propfind.ActiveLock(ctx, c.Providor, r, lk)
	if err != nil {
		return err
	}
	ld, err := davxml.LockDiscovery(al)
	if err != nil {
		return err
	}
	prop, err := davxml.Prop(ld)
	if err != nil {
		return err
	}
	if err := element.Encode(w, prop, element.WithHeader(), element.WithIndent("", "  ")); err != nil {
		return fmt.Errorf("encode lockdiscovery failed, err:%w", err)
	}
	_, _ = io.WriteString(w, "\n")
	logutil.GetLogger(ctx).Info("lock resource succ", zap.String("path", r.ID()), zap.String("token", lk.Token))
	if !args.release {
		return nil
	}
	if _, err := lm.UnlockToken(ctx, r, lk.Token); err != nil {
		return fmt.Errorf("unlock resource failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("unlock resource succ", zap.String("path", r.ID()))
	return nil
}

func init() {
	register(NewLockCmd)
}
