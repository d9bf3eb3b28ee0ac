package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"predictive-keyboard/configs"
	"predictive-keyboard/internal/domain"
	"predictive-keyboard/internal/ports/input"
	protocol "predictive-keyboard/protocal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// serviceFactory returns the prediction use case and a func that waits for pending log writes
type serviceFactory func(cfg *configs.Config) (input.PredictionService, func(), error)

func newService(cfg *configs.Config) (input.PredictionService, func(), error) {
	service, err := protocol.NewPredictionService(cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	return service, service.Wait, nil
}

// NewRootCmd builds the predict command tree
func NewRootCmd(factory serviceFactory) *cobra.Command {
	var (
		configPath string
		env        string
		debug      bool
	)

	load := func() (input.PredictionService, func(), error) {
		cfg, err := configs.LoadConfig(configPath, env)
		if err != nil {
			return nil, nil, err
		}
		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return factory(cfg)
	}

	cmd := &cobra.Command{
		Use:           "predict",
		Short:         "Ask the configured models for keyboard predictions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config-path", "./configs", "directory holding config.yaml")
	cmd.PersistentFlags().StringVar(&env, "env", "", "the environment to use")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	cmd.AddCommand(newCharCmd(load), newWordCmd(load))
	return cmd
}

func newCharCmd(load func() (input.PredictionService, func(), error)) *cobra.Command {
	return &cobra.Command{
		Use:   "char <text>",
		Short: "Predict the next characters of the word being typed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, wait, err := load()
			if err != nil {
				return err
			}
			defer wait()

			result, err := service.PredictChar(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
}

func newWordCmd(load func() (input.PredictionService, func(), error)) *cobra.Command {
	var words string

	cmd := &cobra.Command{
		Use:   "word <text>",
		Short: "Pick the next word from a comma-separated list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, wait, err := load()
			if err != nil {
				return err
			}
			defer wait()

			result, err := service.PredictWord(cmd.Context(), args[0], splitWords(words))
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
	cmd.Flags().StringVar(&words, "words", "", "comma-separated words the prediction may take")
	_ = cmd.MarkFlagRequired("words")
	return cmd
}

func splitWords(list string) []string {
	var words []string
	for _, w := range strings.Split(list, ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// printResult writes the list as [symbol, confidence] pairs, the outcome goes to the log
func printResult(cmd *cobra.Command, result *domain.PredictionResult) error {
	pairs := make([][2]interface{}, 0, len(result.Predictions))
	for _, p := range result.Predictions {
		pairs = append(pairs, [2]interface{}{p.Symbol, p.Confidence})
	}
	body, err := json.Marshal(pairs)
	if err != nil {
		return err
	}

	fields := logrus.Fields{"mode": result.Mode, "outcome": result.Outcome.String()}
	if result.Err != nil {
		logrus.WithFields(fields).Warn(result.Err)
	} else {
		logrus.WithFields(fields).Debug("prediction done")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return err
}
