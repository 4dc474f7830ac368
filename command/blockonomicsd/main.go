// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/background"
	"github.com/bitmark-inc/blockonomicsd/gateway"
	"github.com/bitmark-inc/blockonomicsd/poller"
	"github.com/bitmark-inc/blockonomicsd/server"
	"github.com/bitmark-inc/blockonomicsd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("processor: %q", theConfiguration.Processor.URL)

	// connection info
	log.Debugf("%s = %#v", "Server", theConfiguration.Server)
	log.Debugf("%s = %#v", "Poller", theConfiguration.Poller)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// settings saved by the billing platform take priority
	// over those in the configuration file
	meta, found, err := storage.GetMeta()
	if nil != err {
		log.Criticalf("stored settings error: %s", err)
		exitwithstatus.Message("stored settings error: %s", err)
	}
	if found {
		log.Info("using stored gateway settings")
		theConfiguration.Gateway.Meta = meta
	}

	log.Info("initialise gateway")
	factory := gateway.NewProcessorFactory(theConfiguration.Processor, logger.New("processor"))
	theGateway, err := gateway.New(&theConfiguration.Gateway, factory, logger.New("gateway"))
	if nil != err {
		log.Criticalf("gateway initialise error: %s", err)
		exitwithstatus.Message("gateway initialise error: %s", err)
	}
	log.Infof("currency: %s  configured: %v", theGateway.Currency(), theGateway.Meta().Currencies())

	ledger, err := storage.NewLedger(logger.New("ledger"))
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, dataHandles{gateway: theGateway, ledger: ledger}) {
		return
	}

	log.Info("initialise server")
	handler, err := server.New(&theConfiguration.Server, theGateway, ledger, storage.PutMeta, logger.New("server"))
	if nil != err {
		log.Criticalf("server initialise error: %s", err)
		exitwithstatus.Message("server initialise error: %s", err)
	}

	listener, err := server.NewListener(&theConfiguration.Server, handler, logger.New("listener"))
	if nil != err {
		log.Criticalf("listener initialise error: %s", err)
		exitwithstatus.Message("listener initialise error: %s", err)
	}

	log.Info("initialise poller")
	thePoller, err := poller.New(&theConfiguration.Poller, theGateway, ledger, logger.New("poller"))
	if nil != err {
		log.Criticalf("poller initialise error: %s", err)
		exitwithstatus.Message("poller initialise error: %s", err)
	}

	processes := background.Processes{
		listener,
		thePoller,
	}
	processing := background.Start(processes, nil)
	defer processing.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
