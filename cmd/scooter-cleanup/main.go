/*
Copyright 2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/nscaledev/scooter-api-tests/pkg/cleanup"
	"github.com/nscaledev/scooter-api-tests/pkg/constants"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

func main() {
	var options cleanup.Options

	options.AddFlags(pflag.CommandLine)

	// Own flag set, the shared one carries test framework flags.
	zapFlags := flag.NewFlagSet("zap", flag.ExitOnError)

	zapOptions := zap.Options{}
	zapOptions.BindFlags(zapFlags)

	pflag.CommandLine.AddGoFlagSet(zapFlags)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")
	logger.Info("cleanup starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log.WithName("cleanup"))

	if err := cleanup.New(&options).Run(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
