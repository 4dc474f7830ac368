// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

// ParseConfigurationFile - read and execute a Lua files and assign
// the results to a configuration structure
//
// variables are made available to the script as the global table "arg"
// with arg[0] holding the file name
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {
	return parse(fileName, config, variables, func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - same as ParseConfigurationFile but
// executing the source text
func ParseConfigurationString(name string, source string, config interface{}, variables map[string]string) error {
	return parse(name, config, variables, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func parse(name string, config interface{}, variables map[string]string, execute func(*lua.LState) error) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(name))
	for k, v := range variables {
		arg.RawSetString(k, lua.LString(v))
	}
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := execute(L); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", name)
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}

// AbsolutePath - a path relative to the directory unless it is
// already absolute, always cleaned
func AbsolutePath(directory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(directory, path)
}

// FileExists - true if the name can be stat'ed
func FileExists(name string) bool {
	if _, err := os.Stat(name); nil != err {
		return false
	}
	return true
}
