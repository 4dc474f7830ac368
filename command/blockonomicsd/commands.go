// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/gateway"
	"github.com/bitmark-inc/blockonomicsd/storage"
)

const (
	certificateFilename = defaultCertificateFile
	privateKeyFilename  = defaultKeyFile

	validateTimeout = 30 * time.Second
)

// items that data commands operate on
type dataHandles struct {
	gateway *gateway.Gateway
	ledger  *storage.Ledger
}

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "gen-cert", "cert":
		certificateFile := getFilenameWithDirectory(arguments, certificateFilename)
		privateKeyFile := getFilenameWithDirectory(arguments, privateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("server", certificateFile, privateKeyFile, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate key: %q and certificate: %q error: %s\n", privateKeyFile, certificateFile, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated key: %q and certificate: %q\n", privateKeyFile, certificateFile)

	case "start", "run", "config-test", "cfg", "pending", "p", "transaction", "tx", "validate", "check":
		return false // these commands need the configuration

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-cert [DIR] [IPs...]    (cert)   - create private key in:  %q\n", "DIR/"+privateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+certificateFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  pending                    (p)      - list orders still waiting for confirmation\n")
		fmt.Printf("\n")

		fmt.Printf("  transaction ORDER          (tx)     - show the stored state of an order\n")
		fmt.Printf("\n")

		fmt.Printf("  validate ORDER             (check)  - query the processor and update the stored order\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		redacted := *options
		if "" != redacted.Gateway.Meta.APIKey {
			redacted.Gateway.Meta.APIKey = "********"
		}
		printJson(redacted)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger and gateway are initialised so these commands can
// access and/or change the stored orders
func processDataCommand(log *logger.L, arguments []string, handles dataHandles) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "pending", "p":
		pending, err := handles.ledger.Pending()
		if nil != err {
			exitwithstatus.Message("pending error: %s", err)
		}
		printJson(pending)

	case "transaction", "tx":
		orderID := orderArgument(arguments)
		tx, err := handles.ledger.Get(orderID)
		if nil != err {
			exitwithstatus.Message("transaction: %q error: %s", orderID, err)
		}
		printJson(tx)

	case "validate", "check":
		orderID := orderArgument(arguments)

		ctx, cancel := context.WithTimeout(context.Background(), validateTimeout)
		defer cancel()

		tx, err := handles.gateway.ValidateOrder(ctx, orderID)
		if nil != err {
			exitwithstatus.Message("validate: %q error: %s", orderID, err)
		}
		stored, changed, err := handles.ledger.Put(tx)
		if nil != err {
			exitwithstatus.Message("store: %q error: %s", orderID, err)
		}
		log.Infof("validate: %q  status: %s  changed: %t", orderID, stored.Status, changed)
		printJson(stored)

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

func orderArgument(arguments []string) string {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing order id argument")
	}
	orderID := strings.TrimSpace(arguments[0])
	if "" == orderID {
		exitwithstatus.Message("missing order id")
	}
	return orderID
}

func printJson(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
