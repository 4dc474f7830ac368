// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
)

const (
	logFile  = "blockonomics-cli.log"
	logSize  = 1024 * 1024
	logCount = 2
)

type metadata struct {
	client  *blockonomics.Client
	timeout time.Duration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := cli.NewApp()
	app.Name = "blockonomics-cli"
	app.Usage = "query the Blockonomics API"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "api-key, k",
			Value:  "",
			Usage:  "*processor API `KEY`",
			EnvVar: "BLOCKONOMICS_API_KEY",
		},
		cli.StringFlag{
			Name:  "url, u",
			Value: blockonomics.DefaultURL,
			Usage: " API base `URL`",
		},
		cli.BoolFlag{
			Name:  "insecure",
			Usage: " skip TLS certificate verification",
		},
		cli.IntFlag{
			Name:  "timeout, t",
			Value: int(blockonomics.DefaultRequestTimeout / time.Second),
			Usage: " request timeout `SECONDS`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "balance",
			Usage:     "balance of addresses or xpubs",
			ArgsUsage: "ADDRESS...\n   (* = required)",
			Action:    runBalance,
		},
		{
			Name:      "history",
			Usage:     "transaction history of addresses or xpubs",
			ArgsUsage: "ADDRESS...\n   (* = required)",
			Action:    runHistory,
		},
		{
			Name:      "tx-detail",
			Usage:     "details of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id `TXID`",
				},
			},
			Action: runTransactionDetail,
		},
		{
			Name:      "tx-receipt",
			Usage:     "receipt for a transaction paying an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id `TXID`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
			},
			Action: runTransactionReceipt,
		},
		{
			Name:      "order",
			Usage:     "fetch a merchant order",
			ArgsUsage: "ORDER-UUID\n   (* = required)",
			Action:    runOrder,
		},
		{
			Name:      "create-wallet",
			Usage:     "register an xpub as a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*wallet `NAME`",
				},
				cli.StringFlag{
					Name:  "xpub, x",
					Value: "",
					Usage: "*extended public key `XPUB`",
				},
			},
			Action: runCreateWallet,
		},
		{
			Name:      "update-wallet",
			Usage:     "rename a wallet and set its gap limit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "id, i",
					Value: 0,
					Usage: "*wallet `ID`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*wallet `NAME`",
				},
				cli.IntFlag{
					Name:  "gap-limit, g",
					Value: 20,
					Usage: " address gap limit `COUNT`",
				},
			},
			Action: runUpdateWallet,
		},
		{
			Name:      "delete-wallet",
			Usage:     "remove a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "id, i",
					Value: 0,
					Usage: "*wallet `ID`",
				},
			},
			Action: runDeleteWallet,
		},
		{
			Name:      "new-address",
			Usage:     "allocate a receiving address",
			ArgsUsage: "[KEY=VALUE...]\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reset, r",
					Usage: " restart the derivation index",
				},
			},
			Action: runNewAddress,
		},
		{
			Name:      "price",
			Usage:     "current BTC price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "currency, c",
					Value: "USD",
					Usage: " fiat `CODE`",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "create-product",
			Usage:     "create a temporary product from a parent",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "parent, p",
					Value: "",
					Usage: "*parent product `UID`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*product `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " product `TEXT`",
				},
				cli.StringFlag{
					Name:  "value, a",
					Value: "",
					Usage: "*price `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "extra-data, x",
					Value: "",
					Usage: " opaque `DATA` returned with the order",
				},
			},
			Action: runCreateProduct,
		},
		{
			Name:  "version",
			Usage: "display blockonomics-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// create the processor client
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// no client is needed for these
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		levels := map[string]string{
			logger.DefaultTag: "critical",
		}
		if verbose {
			levels[logger.DefaultTag] = "debug"
		}
		err := logger.Initialise(logger.Configuration{
			Directory: os.TempDir(),
			File:      logFile,
			Size:      logSize,
			Count:     logCount,
			Levels:    levels,
		})
		if nil != err {
			return err
		}

		timeout := c.GlobalInt("timeout")
		if timeout <= 0 {
			return fmt.Errorf("invalid timeout: %d", timeout)
		}

		configuration := &blockonomics.Configuration{
			URL:            c.GlobalString("url"),
			APIKey:         c.GlobalString("api-key"),
			InsecureTLS:    c.GlobalBool("insecure"),
			RequestTimeout: timeout,
		}
		if verbose {
			fmt.Fprintf(e, "url: %q\n", configuration.URL)
		}

		client, err := blockonomics.New(configuration, logger.New("client"))
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			client:  client,
			timeout: time.Duration(timeout) * time.Second,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
