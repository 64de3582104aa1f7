// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const appVersion = "1.0.0"

var formatFlag = cli.StringFlag{
	Name:  "format, f",
	Value: "safe",
	Usage: "archive layout of the granule: safe or cog",
}

var outputFlag = cli.StringFlag{
	Name:  "output, o",
	Usage: "write the JSON document to `FILE` instead of stdout",
}

var commands = cli.Commands{
	cli.Command{
		Name:      "convert",
		Aliases:   []string{"c"},
		Usage:     "Convert a Sentinel-1 SLC granule into a STAC Item",
		ArgsUsage: "GRANULE_PATH",
		Flags:     []cli.Flag{formatFlag, outputFlag},
		Action:    convertAction,
	},
	cli.Command{
		Name:   "collection",
		Usage:  "Emit the Sentinel-1 SLC STAC Collection",
		Flags:  []cli.Flag{outputFlag},
		Action: collectionAction,
	},
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the sentinel1 webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Update the local index with converted granules",
		Flags:   []cli.Flag{formatFlag},
		Action:  ingestAction,
	},
	cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Update database schema",
		Action:  migrateDatabaseAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the sentinel1 CLI",
		Action:  versionAction,
	},
}

func versionAction(c *cli.Context) {
	fmt.Fprintln(c.App.Writer, appVersion)
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "sentinel1"
	app.Usage = "Convert Sentinel-1 SLC granules into STAC Items"
	app.Version = appVersion
	app.Commands = commands
	return
}
