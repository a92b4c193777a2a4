// Package main demonstrates frame construction, summary statistics,
// and period end-point resolution.
package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/sartorproj/gotsframe/frame"
	"github.com/sartorproj/gotsframe/index"
	"github.com/sartorproj/gotsframe/period"
)

func main() {
	banner("GoTSFrame Demonstration - time-series frames and period endpoints")

	f := buildDailyFrame()

	banner("Daily price frame (first rows)")
	fmt.Print(f.Head(5))

	banner("Summary statistics")
	summary, err := f.Describe(nil)
	must(err)
	fmt.Print(summary)

	banner("Monthly endpoints")
	eps, err := f.Endpoints(period.Months(1))
	must(err)
	fmt.Printf("Positions: %v\n\n", eps)
	closes := bucketCloses(f, eps)
	fmt.Println("Month-end closing prices:")
	prev := 0
	for i, ep := range eps {
		fmt.Printf("  %s  close=%8.2f  (%d rows)\n",
			f.Index().Format(ep-1), closes[i], ep-prev)
		prev = ep
	}

	banner("Every second week (named frequency form)")
	biweekly, err := f.EndpointsEvery("weeks", 2)
	must(err)
	fmt.Printf("Positions: %v\n", biweekly)

	banner("Classifier form: last row of each weekday")
	byDay, err := f.EndpointsFunc(func(v index.Value) any { return v.Time.Weekday() }, 1)
	must(err)
	for _, ep := range byDay {
		fmt.Printf("  %-9s -> row %d\n", f.Index().Time(ep-1).Weekday(), ep)
	}

	banner("Broadcast: log-transformed columns")
	logged := f.Apply("log", math.Log)
	fmt.Print(logged.Head(3))

	banner("Monthly closes")
	fmt.Println(asciigraph.Plot(closes, asciigraph.Height(8), asciigraph.Width(48)))

	banner("Done")
}

// buildDailyFrame synthesizes 181 daily prices starting 2007-01-02.
func buildDailyFrame() *frame.Frame {
	start := time.Date(2007, 1, 2, 0, 0, 0, 0, time.UTC)
	n := 181
	dates := make([]time.Time, n)
	prices := make([]float64, n)
	volumes := make([]float64, n)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
		prices[i] = 100 + 0.15*float64(i) + 6*math.Sin(float64(i)/9)
		volumes[i] = 1000 + 250*math.Cos(float64(i)/5)
	}
	f, err := frame.New(index.Dates(dates), []string{"price", "volume"},
		[][]float64{prices, volumes})
	must(err)
	return f
}

// bucketCloses extracts the price at each endpoint position.
func bucketCloses(f *frame.Frame, eps []int) []float64 {
	col, err := f.Column("price")
	must(err)
	out := make([]float64, len(eps))
	for i, ep := range eps {
		out[i] = col[ep-1]
	}
	return out
}

func banner(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 72), title, strings.Repeat("=", 72))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
