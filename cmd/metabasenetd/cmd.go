// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"

	"github.com/metabasenet/metabasenet/conf"
	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/modules/ctsdb"
	"github.com/metabasenet/metabasenet/node"
	"github.com/metabasenet/metabasenet/node/kinds"
	"github.com/metabasenet/metabasenet/node/mode"
)

// exitCode maps the entry sequencer's three failure classes to the §6
// table: 1 configuration error, 2 environment error, 3 module init failure.
type exitCode int

const (
	exitOK            exitCode = 0
	exitConfigError   exitCode = 1
	exitEnvError      exitCode = 2
	exitModuleInitErr exitCode = 3
)

type sequencerError struct {
	code exitCode
	err  error
}

func (e *sequencerError) Error() string { return e.err.Error() }

// appRun drives the 6-step entry sequencer. runID identifies this process
// instance in log lines, the way a request ID threads through a server.
func appRun(c *cli.Context) error {
	runID := uuid.New().String()
	sink := log.Default()

	// Step 1: parse configuration and compute the data directory.
	cfg, err := buildConfig(c)
	if err != nil {
		return &sequencerError{code: exitConfigError, err: err}
	}

	// Step 2: validate/create the data directory, require >=100MB free.
	if err := ensureDataDir(cfg.NodeCfg.DataPath); err != nil {
		return &sequencerError{code: exitEnvError, err: err}
	}

	// Step 3: initialize the logger.
	log.Init(cfg.NodeCfg, cfg.LoggerCfg)
	sink.Info("metabasenetd starting", "run_id", runID, "mode", cfg.NodeCfg.Mode, "data_dir", cfg.NodeCfg.DataPath)

	if cfg.NodeCfg.Mode == conf.ModePurge {
		return runPurge(cfg, sink)
	}

	// Step 4: instantiate modules per mode, attach to the container.
	cont := node.New(sink)
	if err := attachModules(cont, cfg, sink); err != nil {
		return &sequencerError{code: exitModuleInitErr, err: err}
	}

	// Step 5: call Run on the container.
	if err := cont.Run(); err != nil {
		return &sequencerError{code: exitModuleInitErr, err: err}
	}
	sink.Info("metabasenetd running", "run_id", runID)

	if watcher, err := watchConfig(cfg, sink); err == nil {
		defer watcher.Close()
	} else {
		sink.Warn("config watcher unavailable", "error", err)
	}

	// Step 6: wait for a termination signal, then Exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sink.Info("metabasenetd shutting down", "run_id", runID)
	cont.Exit()
	log.Close()
	return nil
}

// runPurge implements the PURGE mode per the mode registry's design note:
// it never reaches Container.Run. LOCK is acquired directly, the storage
// data path is wiped with ctsdb.WipeDirectory, and the lock is released.
func runPurge(cfg conf.AppConfig, sink log.Sink) error {
	cont := node.New(sink)
	lock := kinds.NewLock(cfg.NodeCfg.DataPath, sink)
	if !cont.Attach(lock) {
		return &sequencerError{code: exitModuleInitErr, err: fmt.Errorf("attach lock")}
	}
	if err := lock.Initialize(cont); err != nil {
		return &sequencerError{code: exitEnvError, err: err}
	}
	defer lock.Deinitialize(cont)

	if err := ctsdb.WipeDirectory(cfg.StorageCfg.DataPath); err != nil {
		return &sequencerError{code: exitModuleInitErr, err: err}
	}
	sink.Info("purge complete", "data_dir", cfg.NodeCfg.DataPath)
	return nil
}

// attachModules constructs one concrete kinds.* instance per entry in
// mode.KindsFor(cfg.NodeCfg.Mode) and attaches it to cont, in order.
func attachModules(cont *node.Container, cfg conf.AppConfig, sink log.Sink) error {
	kindList, ok := mode.KindsFor(cfg.NodeCfg.Mode)
	if !ok {
		return fmt.Errorf("no module kinds registered for mode %q", cfg.NodeCfg.Mode)
	}

	db := ctsdb.New(cfg.StorageCfg.DataPath, cfg.StorageCfg.BucketWidthSeconds, cfg.StorageCfg.CompressChunks)
	jwtSecret := decodeJWTSecret(cfg.RPCJWTSecretHex)

	for _, k := range kindList {
		var m node.Module
		switch k {
		case mode.KindLock:
			m = kinds.NewLock(cfg.NodeCfg.DataPath, sink)
		case mode.KindRecovery:
			m = kinds.NewRecovery(cfg.StorageCfg.DataPath, db, sink)
		case mode.KindNetwork:
			m = kinds.NewNetwork(cfg.NetworkListenAddr, sink)
		case mode.KindNetChannel:
			m = kinds.NewNetChannel("network", sink)
		case mode.KindBlockChannel:
			m = kinds.NewBlockChannel(sink)
		case mode.KindCertTxChannel:
			m = kinds.NewCertTxChannel(sink)
		case mode.KindUserTxChannel:
			m = kinds.NewUserTxChannel(sink)
		case mode.KindDelegatedChannel:
			m = kinds.NewDelegatedChannel(sink)
		case mode.KindDispatcher:
			m = kinds.NewDispatcher(sink)
		case mode.KindService:
			m = kinds.NewService(sink)
		case mode.KindCoreProtocol:
			m = kinds.NewCoreProtocol(sink)
		case mode.KindTxPool:
			m = kinds.NewTxPool(sink)
		case mode.KindBlockchain:
			m = kinds.NewBlockchain(sink)
		case mode.KindForkManager:
			m = kinds.NewForkManager(sink)
		case mode.KindConsensus:
			m = kinds.NewConsensus(sink)
		case mode.KindBlockMaker:
			m = kinds.NewBlockMaker(sink)
		case mode.KindHTTPServer:
			m = kinds.NewHTTPServer(cfg.HTTPAddr, sink)
		case mode.KindHTTPGet:
			m = kinds.NewHTTPGet(0, sink)
		case mode.KindRPCClient:
			m = kinds.NewRPCClient("httpget", sink)
		case mode.KindRPCMode:
			m = kinds.NewRPCMode(jwtSecret, sink)
		case mode.KindDataStat:
			m = kinds.NewDataStat(sink)
		case mode.KindWallet:
			w, err := kinds.NewRealWallet(sink)
			if err != nil {
				sink.Warn("wallet: falling back to dummy wallet", "error", err)
				m = kinds.NewDummyWallet(sink)
			} else {
				m = w
			}
		default:
			return fmt.Errorf("no constructor registered for module kind %q", k)
		}
		if !cont.Attach(m) {
			return fmt.Errorf("duplicate module name for kind %q", k)
		}
	}
	return nil
}

// watchConfig watches the data directory and logs write and create events
// at debug level; it does not re-read or re-validate the config file.
// Component G is a one-shot bootstrap
// (spec.md §4.G): a detected change is logged, never hot-swapped into the
// running container.
func watchConfig(cfg conf.AppConfig, sink log.Sink) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(cfg.NodeCfg.DataPath); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					sink.Debug("data directory changed", "event", ev.String())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				sink.Warn("config watcher error", "error", err)
			}
		}
	}()
	return watcher, nil
}

func decodeJWTSecret(hexSecret string) []byte {
	if hexSecret == "" {
		return []byte("metabasenetd-dev-secret")
	}
	b, err := hex.DecodeString(hexSecret)
	if err != nil {
		return []byte(hexSecret)
	}
	return b
}

// ensureDataDir implements step 2: create the directory if missing and
// require at least conf.MinFreeDiskSpaceMB free.
func ensureDataDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return fmt.Errorf("stat data directory: %w", err)
	}
	freeMB := (stat.Bavail * uint64(int64(stat.Bsize))) / (1024 * 1024)
	if freeMB < conf.MinFreeDiskSpaceMB {
		return fmt.Errorf("data directory has %d MB free, need at least %d MB", freeMB, conf.MinFreeDiskSpaceMB)
	}
	return nil
}
