package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TurfBooking/internal/config"
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	listDates "github.com/m04kA/SMC-TurfBooking/internal/usecase/list_dates"
)

func newDatesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "Print the bookable dates and hour slots for the configured timezone",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			window, err := newWindow(cfg)
			if err != nil {
				return err
			}

			resp := listDates.NewUseCase(window).Execute()
			for _, d := range resp.Dates {
				fmt.Fprintf(os.Stdout, "%s  %s\n", d.Date, strings.Join(domain.SlotStrings(d.Hours), " "))
			}
			return nil
		},
	}
}
