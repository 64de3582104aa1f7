package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/lmizzoni/sentinel1/safe"
	"github.com/lmizzoni/sentinel1/slc"
	"github.com/lmizzoni/sentinel1/util"
)

func parseFormatFlag(value string) (safe.Format, error) {
	switch strings.ToLower(value) {
	case "", "safe":
		return safe.FormatSAFE, nil
	case "cog":
		return safe.FormatCOG, nil
	}
	return "", fmt.Errorf("Unknown archive format: %s (expected safe or cog)", value)
}

func writeDocument(c *cli.Context, document string) error {
	if output := c.String("output"); output != "" {
		return ioutil.WriteFile(output, []byte(document+"\n"), 0644)
	}
	fmt.Fprintln(c.App.Writer, document)
	return nil
}

func convertAction(c *cli.Context) error {
	ctx := &util.BasicLogContext{}

	granulePath := c.Args().First()
	if granulePath == "" {
		return cli.NewExitError("A granule path is required", 1)
	}

	format, err := parseFormatFlag(c.String("format"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	item, err := slc.CreateItem(granulePath, format, util.GetAssetBaseURL())
	if err != nil {
		util.LogSimpleErr(ctx, fmt.Sprintf("Failed to convert granule %s.", granulePath), err)
		return cli.NewExitError(err.Error(), 1)
	}

	if err = writeDocument(c, item.String()); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func collectionAction(c *cli.Context) error {
	href := util.GetCollectionHref()
	if output := c.String("output"); output != "" && os.Getenv(util.COLLECTION_HREF) == "" {
		href = output
	}

	collection := slc.CreateCollection(href)
	if err := writeDocument(c, collection.String()); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}
