// 写满磁盘: 以固定大小的全零块不断追加写同一个文件, 每次写入后 fsync, 直到设备报错为止
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	humanize "github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/nullne/fill-disk/bench"
	"github.com/nullne/fill-disk/util"
)

var fMetricsAddr = flag.String("metrics-addr", "", "serve prometheus metrics on this address, empty disables it")

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: fill-disk [flags] <file> <block-size>")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	// never log into the filesystem we are about to fill
	flag.Set("logtostderr", "true")
	flag.Usage = usage
	flag.Parse()

	p, blockSize, err := util.ParseFillArgs(flag.Args())
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
		glog.Warningf("received %v, closing %s", sig, p)
		cancel()
	}()

	s, err := fill(ctx, p, blockSize)
	code := util.Verdict(err, s, "blocks")
	glog.Flush()
	os.Exit(code)
}

func fill(ctx context.Context, p string, blockSize int) (bench.Stats, error) {
	glog.Infof("creating filler file %s", p)
	f, err := os.Create(p)
	if err != nil {
		return bench.Stats{}, errors.Wrapf(err, "create %s", p)
	}
	defer f.Close()

	if space, err := util.FreeSpace(filepath.Dir(p)); err != nil {
		glog.Warning(err)
	} else {
		glog.Infof("%s available under %s, expecting about %d blocks of %s",
			humanize.IBytes(space.Bytes), filepath.Dir(p), space.Bytes/uint64(blockSize), humanize.IBytes(uint64(blockSize)))
	}
	return util.EatDisk(ctx, f, p, blockSize)
}
