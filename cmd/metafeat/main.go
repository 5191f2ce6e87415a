package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/cheggaaa/pb/v3"
	"github.com/go-errors/errors"

	"github.com/metafeat/metafeat"
	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
	"github.com/metafeat/metafeat/output"
	"github.com/metafeat/metafeat/summary"
)

var (
	name    = "metafeat"
	version = "31.Aug.2026"
)

type args struct {
	Dataset  string   `arg:"help:path to the csv dataset,required"`
	Class    string   `arg:"help:name of the class column,required"`
	Groups   []string `arg:"help:measure groups to extract (default all),separate"`
	Features []string `arg:"help:features to extract (single group only),separate"`
	Summary  []string `arg:"help:summary functions to apply (default mean and sd),separate"`
	Format   string   `arg:"help:output format (csv or json)"`
	Output   string   `arg:"help:path to write results to (default stdout)"`
	ByClass  bool     `arg:"help:expand statistical measures per class"`
	Raw      bool     `arg:"help:disable attribute transformation between views"`
	Folds    int      `arg:"help:cross-validation folds for landmarking"`
	Score    string   `arg:"help:landmarking score (accuracy or kappa)"`
	Seed     int64    `arg:"help:seed for the stochastic landmarkers"`
	List     bool     `arg:"help:list the registered groups and features and exit"`
	Cache    string   `arg:"help:directory for the on-disk measurement cache"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf("%s - extract meta-features characterising a dataset", name)
}

func list() {
	for _, g := range metafeat.ListGroups() {
		features, err := metafeat.ListFeatures(g)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%s: %s\n", g, strings.Join(features, " "))
	}
}

func main() {
	var args args
	arg.MustParse(&args)

	if args.List {
		list()
		return
	}

	f, err := os.Open(args.Dataset)
	if err != nil {
		log.Fatalln(errors.Wrap(err, 0).ErrorStack())
	}
	d, err := dataset.FromCSV(f, args.Class)
	f.Close()
	if err != nil {
		log.Fatalln(errors.Wrap(err, 0).ErrorStack())
	}

	groups := args.Groups
	if len(groups) == 0 {
		groups = metafeat.ListGroups()
	} else if len(groups) == 1 && groups[0] == metafeat.AllGroups {
		groups = metafeat.ListGroups()
	}

	cfg := summary.DefaultConfig()
	if len(args.Summary) > 0 {
		cfg = summary.Config{Methods: args.Summary}
	}

	var executor measures.Executor = measures.NewMeasurementExecutor(nil)
	if len(args.Cache) > 0 {
		executor = measures.NewDiskMeasurementExecutor(args.Cache, nil)
	}

	opts := measures.Options{
		ByClass:     args.ByClass,
		NoTransform: args.Raw,
		Folds:       args.Folds,
		Score:       args.Score,
		Seed:        args.Seed,
	}

	if args.Features != nil && len(groups) != 1 {
		log.Fatalln("features can only be selected for a single group")
	}

	bar := pb.StartNew(len(groups))
	merged := summary.Result{}
	for _, g := range groups {
		result, err := executor.Execute(d, g, args.Features, opts, cfg)
		if err != nil {
			log.Fatalln(errors.Wrap(err, 0).ErrorStack())
		}
		merged.Merge(result)
		bar.Increment()
	}
	bar.Finish()

	formatter := output.CsvResultFormatter
	if args.Format == "json" {
		formatter = output.JsonResultFormatter
	}
	s, err := formatter(merged)
	if err != nil {
		log.Fatalln(errors.Wrap(err, 0).ErrorStack())
	}

	if len(args.Output) > 0 {
		if err := ioutil.WriteFile(args.Output, []byte(s), 0644); err != nil {
			log.Fatalln(errors.Wrap(err, 0).ErrorStack())
		}
		return
	}
	fmt.Print(s)
}
