package main

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/activefyne/activefyne"
	"github.com/activefyne/activefyne/chanbuf"
	"github.com/activefyne/activefyne/internal/config"
	"github.com/activefyne/activefyne/internal/ui"
	"github.com/activefyne/activefyne/proc"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.activefyne.demo"
	AppName = "activefyne demo"

	EntryMinWidth = 280
	MonitorLines  = 100
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	settings := config.NewSettings(myApp)
	myWindow.Resize(settings.GetWindowSize())

	capacity := settings.GetEventBufferSize()
	monitor := ui.NewMonitor(MonitorLines)

	// One overwrite-oldest event channel per entry keeps the Fyne event
	// goroutine from ever blocking on a slow consumer.
	labels := []string{
		"Entia Non Sunt Multiplicanda Praeter Necessitatem",
		"Less is More ... More or Less",
		"Cogito Ergo Occam",
	}
	entries := make([]*activefyne.Entry, len(labels))
	outs := make([]<-chan string, len(labels))
	for i, label := range labels {
		in, out := chanbuf.OverwriteOldest[string](capacity)
		entries[i] = activefyne.NewEntry(nil, in, label, EntryMinWidth)
		outs[i] = out
	}

	// The mirror entry is driven purely through its configure channel.
	mirrorConfigure := make(chan any)
	mirror := activefyne.NewEntry(mirrorConfigure, nil, "", EntryMinWidth)
	mirror.Disable()

	sliderIn, sliderOut := chanbuf.OverwriteOldest[int](capacity)
	slider := activefyne.NewSlider(nil, sliderIn, 0, 100)

	clearIn, clearOut := chanbuf.OverwriteOldest[string](capacity)
	clearBtn := activefyne.NewButton(nil, clearIn, "Clear mirror")

	// Consumer processes: every edited text goes to the monitor and is
	// mirrored into the configure-driven entry; slider positions and button
	// activations go to the monitor.
	consumers := []proc.Runner{
		proc.RunnerFunc(func() {
			for text := range chanbuf.Merge(outs...) {
				if settings.GetVerboseEventLog() {
					log.Printf("text event: %q", text)
				}
				monitor.Append("entry", text)
				mirrorConfigure <- text
			}
		}),
		proc.RunnerFunc(func() {
			for value := range sliderOut {
				monitor.Append("slider", strconv.Itoa(value))
			}
		}),
		proc.RunnerFunc(func() {
			for label := range clearOut {
				monitor.Append("button", label)
				mirrorConfigure <- ""
			}
		}),
	}

	runners := make([]proc.Runner, 0, len(entries)+3+len(consumers))
	for _, e := range entries {
		runners = append(runners, e)
	}
	runners = append(runners, mirror, slider, clearBtn)
	runners = append(runners, consumers...)
	proc.Start(runners...)

	controls := container.NewVBox(
		entries[0], entries[1], entries[2],
		mirror,
		slider,
		clearBtn,
	)
	myWindow.SetContent(container.NewBorder(controls, nil, nil, nil, monitor.Object()))

	// Show and run
	myWindow.ShowAndRun()
}
