package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jamesrr39/directory-tree-creator/appconfig"
	"github.com/jamesrr39/directory-tree-creator/buildplan"
	"github.com/jamesrr39/directory-tree-creator/treebuilder"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	envConf *appconfig.Config
	app     *kingpin.Application
	verbose *bool
)

func main() {
	var err error
	envConf, err = appconfig.Load(context.Background())
	if nil != err {
		fmt.Fprintf(os.Stderr, "couldn't load configuration from the environment: %s\n", err)
		os.Exit(1)
	}

	app = kingpin.New("directory-tree-creator", "creates trees of test directories, with a given number of directories on each nesting level")
	verbose = app.Flag("verbose", "log every directory as it is created").Short('v').Bool()

	setupBuildCommand()
	setupBuildFromPlanCommand()
	setupPlanCommand()
	setupCountCommand()

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func setupBuildCommand() {
	cmd := app.Command("build", "create a directory tree")
	root := cmd.Flag("root", "root directory of the tree. Defaults to $TREE_CREATOR_DEFAULT_ROOT").Short('C').String()
	dirMode := cmd.Flag("dir-mode", "mode directories are created with, in octal. Defaults to $TREE_CREATOR_DIR_MODE").String()
	fanoutArg := cmd.Arg("fanout", "comma-separated number of directories to create on each nesting level, e.g. '2,3,4'").Required().String()
	cmd.Action(func(ctx *kingpin.ParseContext) error {
		fanout, err := buildplan.ParseFanout(*fanoutArg)
		if nil != err {
			return err
		}

		mode, err := resolveDirMode(envConf, *dirMode)
		if nil != err {
			return err
		}

		return runBuild(treebuilder.NewConfig(resolveRoot(envConf, *root), fanout), mode)
	})
}

func setupBuildFromPlanCommand() {
	cmd := app.Command("build-from-plan", "create a directory tree described by a YAML or JSON plan file")
	planLocation := cmd.Arg("plan location", "location of the plan file").Required().String()
	cmd.Action(func(ctx *kingpin.ParseContext) error {
		plan, err := buildplan.LoadPlan(afero.NewOsFs(), *planLocation)
		if nil != err {
			return err
		}

		conf, mode, err := resolvePlan(envConf, plan)
		if nil != err {
			return err
		}

		return runBuild(conf, mode)
	})
}

func setupPlanCommand() {
	cmd := app.Command("plan", "list the leaf directories a build would create, in creation order, without creating anything")
	root := cmd.Flag("root", "root directory of the tree. Defaults to $TREE_CREATOR_DEFAULT_ROOT").Short('C').String()
	fanoutArg := cmd.Arg("fanout", "comma-separated number of directories to create on each nesting level, e.g. '2,3,4'").Required().String()
	cmd.Action(func(ctx *kingpin.ParseContext) error {
		fanout, err := buildplan.ParseFanout(*fanoutArg)
		if nil != err {
			return err
		}

		conf := treebuilder.NewConfig(resolveRoot(envConf, *root), fanout)
		return treebuilder.WalkLeaves(conf, func(leafPath string) error {
			relativePath, err := treebuilder.NewRelativePath(conf.RootPath, leafPath)
			if nil != err {
				return err
			}

			fmt.Println(relativePath)
			return nil
		})
	})
}

func setupCountCommand() {
	cmd := app.Command("count", "show how many directories a build would create on each nesting level")
	fanoutArg := cmd.Arg("fanout", "comma-separated number of directories to create on each nesting level, e.g. '2,3,4'").Required().String()
	cmd.Action(func(ctx *kingpin.ParseContext) error {
		fanout, err := buildplan.ParseFanout(*fanoutArg)
		if nil != err {
			return err
		}

		counts, countErr := countDirectories(fanout)
		if nil != countErr {
			return countErr
		}

		fmt.Println("Nesting Level | Directories")
		for i, levelCount := range counts.PerLevel {
			fmt.Printf("%d | %s\n", i+1, formatCount(levelCount))
		}
		fmt.Printf("total | %s\n", formatCount(counts.Total))

		return nil
	})
}

func runBuild(conf treebuilder.Config, mode os.FileMode) error {
	logger, err := newLogger()
	if nil != err {
		return err
	}

	builder := treebuilder.NewTreeBuilder(logger)
	builder.DirMode = mode

	result, err := builder.Build(conf)
	if nil != err {
		return err
	}

	// the counts can't overflow here, the tree has been built
	counts, _ := treebuilder.CountDirectories(conf.Fanout)
	fmt.Printf(
		"Created %s leaf directories (%s directories in total) under '%s'\n",
		formatCount(result.LeavesCreated),
		formatCount(counts.Total),
		conf.RootPath,
	)

	return nil
}

func newLogger() (*logpkg.Logger, error) {
	if *verbose {
		return logpkg.NewLogger(os.Stderr, logpkg.LogLevelDebug), nil
	}

	level, err := envConf.ParseLogLevel()
	if nil != err {
		return nil, err
	}

	return logpkg.NewLogger(os.Stderr, level), nil
}

func formatCount(count uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(count))
}
