// 在指定目录下不停地创建 1 字节的小文件, 文件名随机, 直到文件系统的 inode 或目录项耗尽
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/nullne/fill-disk/util"
)

var fMetricsAddr = flag.String("metrics-addr", "", "serve prometheus metrics on this address, empty disables it")

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: make-files [flags] <directory>")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Set("logtostderr", "true")
	flag.Usage = usage
	flag.Parse()

	dir, err := util.ParseFloodArgs(flag.Args())
	if errors.Is(err, util.ErrUsage) {
		usage()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *fMetricsAddr != "" {
		util.ServeMetrics(*fMetricsAddr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalCh
		glog.Warningf("received %v, stopping", sig)
		cancel()
	}()

	if space, err := util.FreeSpace(dir); err != nil {
		glog.Warning(err)
	} else {
		glog.Infof("%d inodes available under %s", space.Inodes, dir)
	}

	names := util.RandomNamer()
	glog.Infof("creating files named file-%d-<n> under %s", names.Prefix, dir)
	s, err := util.EatInodes(ctx, dir, names, util.CreateFile)
	code := util.Verdict(err, s, "files")
	glog.Flush()
	os.Exit(code)
}
