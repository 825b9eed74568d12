package main

import (
	"os"

	"github.com/jamesrr39/directory-tree-creator/appconfig"
	"github.com/jamesrr39/directory-tree-creator/buildplan"
	"github.com/jamesrr39/directory-tree-creator/treebuilder"
	"github.com/jamesrr39/goutil/errorsx"
)

// resolveRoot picks the root given on the command line, or the environment's default root if none was given
func resolveRoot(envConf *appconfig.Config, rootFlag string) string {
	if rootFlag != "" {
		return rootFlag
	}
	return envConf.DefaultRoot
}

// resolveDirMode picks the mode given on the command line, or the environment's mode if none was given.
// The environment's mode is only parsed when it is used.
func resolveDirMode(envConf *appconfig.Config, dirModeFlag string) (os.FileMode, errorsx.Error) {
	if dirModeFlag == "" {
		return envConf.ParseDirMode()
	}
	return buildplan.ParseDirMode(dirModeFlag)
}

// resolvePlan combines a plan file with the environment. Values set in the plan take precedence.
func resolvePlan(envConf *appconfig.Config, plan *buildplan.Plan) (treebuilder.Config, os.FileMode, errorsx.Error) {
	conf := plan.ToConfig(envConf.DefaultRoot)

	if plan.DirMode != "" {
		mode, err := buildplan.ParseDirMode(plan.DirMode)
		if nil != err {
			return treebuilder.Config{}, 0, err
		}
		return conf, mode, nil
	}

	mode, err := envConf.ParseDirMode()
	if nil != err {
		return treebuilder.Config{}, 0, err
	}

	return conf, mode, nil
}

// countDirectories counts the directories of a fan-out schedule, rejecting schedules a build would reject too
func countDirectories(fanout []int) (treebuilder.Counts, error) {
	err := treebuilder.NewConfig(".", fanout).Validate()
	if nil != err {
		return treebuilder.Counts{}, err
	}

	counts, ok := treebuilder.CountDirectories(fanout)
	if !ok {
		return treebuilder.Counts{}, errorsx.Errorf("fan-out %v describes more directories than can be counted", fanout)
	}

	return counts, nil
}
