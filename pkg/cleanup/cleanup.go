/*
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

// Package cleanup removes couriers and orders that a test run left behind on
// the shared service, e.g. after an interrupted run skipped its teardown.
package cleanup

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"

	"github.com/nscaledev/scooter-api-tests/test/api"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrNothingToDo     = errors.New("nothing to clean up, set --login or --track")
	ErrMissingPassword = errors.New("--password is required with --login")
)

// Options select what to remove.
type Options struct {
	BaseURL  string
	Login    string
	Password string
	Tracks   []int
	Timeout  time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", api.DefaultBaseURL, "Scooter service base URL.")
	f.StringVar(&o.Login, "login", "", "Login of a courier to delete.")
	f.StringVar(&o.Password, "password", "", "Password of the courier to delete.")
	f.IntSliceVar(&o.Tracks, "track", nil, "Track number of an order to cancel, may be repeated.")
	f.DurationVar(&o.Timeout, "timeout", 30*time.Second, "Per request timeout.")
}

func (o *Options) Validate() error {
	u, err := url.Parse(o.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid --base-url %q: %w", o.BaseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid --base-url %q: scheme and host are required", o.BaseURL)
	}

	if o.Login == "" && len(o.Tracks) == 0 {
		return ErrNothingToDo
	}

	if o.Login != "" && o.Password == "" {
		return ErrMissingPassword
	}

	return nil
}

// Cleaner deletes the selected courier and cancels the selected orders.
type Cleaner struct {
	options *Options
	extra   []api.Option
}

// New returns a cleaner, any client options are applied after the defaults.
func New(options *Options, extra ...api.Option) *Cleaner {
	return &Cleaner{
		options: options,
		extra:   extra,
	}
}

func (c *Cleaner) client(ctx context.Context) *api.APIClient {
	config := api.DefaultTestConfig()
	config.BaseURL = c.options.BaseURL
	config.RequestTimeout = c.options.Timeout
	config.LogRequests = true

	options := append([]api.Option{api.WithLogger(log.FromContext(ctx))}, c.extra...)

	return api.NewAPIClientWithConfig(config, options...)
}

// Run removes everything selected. Individual failures are logged and do not
// stop the run; only a cancelled context does.
func (c *Cleaner) Run(ctx context.Context) error {
	if err := c.options.Validate(); err != nil {
		return err
	}

	log := log.FromContext(ctx)

	client := c.client(ctx)

	if c.options.Login != "" {
		credentials := api.CourierCredentials{
			Login:    c.options.Login,
			Password: c.options.Password,
		}

		if id, ok := client.Couriers().LoginID(ctx, credentials); ok {
			log.Info("deleting courier", "login", c.options.Login, "id", id)
			client.Couriers().Delete(ctx, id)
		} else {
			log.Info("courier not found", "login", c.options.Login)
		}
	}

	for _, track := range c.options.Tracks {
		if err := ctx.Err(); err != nil {
			return err
		}

		log.Info("cancelling order", "track", track)
		client.Orders().Cancel(ctx, track)
	}

	return nil
}
