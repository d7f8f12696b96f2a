// Command flightdelay asks the prediction service for the expected arrival delay of
// a flight.
//
//	flightdelay --sample
//	flightdelay --date 01.03.2019 --dep 18.29 --arr 19.25 --origin IND --dest BWI --carrier WN
//
// Fields that are not given on the command line are prompted for.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"nyiyui.ca/flight-delay/config"
	"nyiyui.ca/flight-delay/form"
	"nyiyui.ca/flight-delay/predict"
)

const defaultBaseURL = "http://127.0.0.1:8080"

// cliKey is the only submitter key a single CLI process uses.
const cliKey = "cli"

type options struct {
	baseURL       string
	configPath    string
	fields        form.Fields
	sample        bool
	rawJSON       bool
	noInteractive bool
}

func main() {
	cmd := newRootCmd(surveyDriver{})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(driver PromptDriver) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "flightdelay",
		Short:        "Predict the arrival delay of a flight",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), driver, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.baseURL, "base-url", defaultBaseURL, "flight delay server; requests go to <base-url>/api/predict")
	flags.StringVar(&opts.configPath, "config", "", "config file with the airport and carrier lists")
	flags.StringVar(&opts.fields.Date, "date", "", "flight date (DD.MM.YYYY)")
	flags.StringVar(&opts.fields.DepHHMM, "dep", "", "departure time (HH.MM)")
	flags.StringVar(&opts.fields.CrsArrHHMM, "arr", "", "planned arrival time (HH.MM)")
	flags.StringVar(&opts.fields.Origin, "origin", "", "origin airport (IATA)")
	flags.StringVar(&opts.fields.Dest, "dest", "", "destination airport (IATA)")
	flags.StringVar(&opts.fields.Carrier, "carrier", "", "carrier code")
	flags.BoolVar(&opts.sample, "sample", false, "use the sample flight")
	flags.BoolVar(&opts.rawJSON, "json", false, "print the raw JSON response")
	flags.BoolVar(&opts.noInteractive, "no-interactive", false, "fail instead of prompting for missing fields")
	return cmd
}

func run(ctx context.Context, out io.Writer, driver PromptDriver, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	codes := cfg.Codes()

	f := opts.fields
	if opts.sample {
		f = form.Sample()
	}
	f.MaskTimes()
	f.Blur()
	if !opts.noInteractive {
		f, err = fillMissing(ctx, driver, f, codes)
		if err != nil {
			return err
		}
	}

	endpoint := strings.TrimRight(opts.baseURL, "/") + "/api/predict"
	sub := predict.NewSubmitter(predict.NewClient(endpoint, nil), codes)
	state := sub.Submit(ctx, cliKey, f)
	if state.Status != predict.StatusSucceeded {
		return errors.New(state.Message())
	}

	if opts.rawJSON {
		out.Write(state.Result.Raw)
		if n := len(state.Result.Raw); n == 0 || state.Result.Raw[n-1] != '\n' {
			fmt.Fprintln(out)
		}
		return nil
	}
	fmt.Fprintf(out, "%s: %s → %s (%s)\n", form.Message(form.MsgRoute), state.Payload.Origin, state.Payload.Dest, state.Payload.Carrier)
	fmt.Fprintf(out, "%s: %s\n", form.Message(form.MsgPredDelay), state.Result.DelayText())
	fmt.Fprintf(out, "%s: %s\n", form.Message(form.MsgPredArrival), state.Result.ArrivalText())
	return nil
}

func validateTime(s string) error {
	if form.Normalize(form.Mask(s)).Kind != form.Canonical {
		return form.ErrTimeFormat
	}
	return nil
}

func validateDate(s string) error {
	if !form.ValidISODate(form.ToISO(strings.TrimSpace(s))) {
		return form.ErrIncomplete
	}
	return nil
}

// fillMissing prompts for every empty field. Times are masked and normalized as they
// would be in the browser.
func fillMissing(ctx context.Context, driver PromptDriver, f form.Fields, codes form.Codes) (form.Fields, error) {
	var err error
	if f.Date == "" {
		f.Date, err = driver.Input(ctx, InputConfig{
			Message:   form.Message(form.MsgDate),
			Help:      form.Message(form.MsgDateHint),
			Validator: validateDate,
		})
		if err != nil {
			return f, err
		}
	}
	for _, field := range []struct {
		value *string
		msg   form.MessageID
	}{
		{&f.DepHHMM, form.MsgDeparture},
		{&f.CrsArrHHMM, form.MsgArrival},
	} {
		if *field.value != "" {
			continue
		}
		v, err := driver.Input(ctx, InputConfig{
			Message:   form.Message(field.msg),
			Validator: validateTime,
		})
		if err != nil {
			return f, err
		}
		*field.value = form.Mask(v)
	}
	f.Blur()

	if f.Origin == "" {
		f.Origin, err = driver.Select(ctx, SelectConfig{
			Message: form.Message(form.MsgOrigin),
			Options: without(codes.Airports, f.Dest),
		})
		if err != nil {
			return f, err
		}
	}
	if f.Dest == "" {
		f.Dest, err = driver.Select(ctx, SelectConfig{
			Message: form.Message(form.MsgDest),
			Options: without(codes.Airports, f.Origin),
		})
		if err != nil {
			return f, err
		}
	}
	if f.Carrier == "" {
		f.Carrier, err = driver.Select(ctx, SelectConfig{
			Message: form.Message(form.MsgCarrier),
			Options: codes.Carriers,
		})
		if err != nil {
			return f, err
		}
	}
	return f, nil
}

// without returns codes minus the one already chosen in the other airport field.
func without(codes []string, chosen string) []string {
	chosen = strings.ToUpper(chosen)
	return slices.DeleteFunc(slices.Clone(codes), func(c string) bool {
		return c == chosen
	})
}
