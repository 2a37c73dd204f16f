package viewer

import (
	"fmt"

	"github.com/amishk599/jobinsight/internal/charts"
)

// Browse alternates between the chart picker and the chart view until the
// user quits.
func Browse(cs []charts.Chart) error {
	if len(cs) == 0 {
		fmt.Println("No charts to show.")
		return nil
	}

	for {
		choice, err := RunChartPicker(cs)
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		if choice < 0 {
			return nil
		}

		wantQuit, err := RunChartView(cs, choice)
		if err != nil {
			return fmt.Errorf("chart view: %w", err)
		}
		if wantQuit {
			return nil
		}
		// else: loop → back to picker
	}
}
