// Command fridge-probe samples a refrigerator's temperature and door switch,
// drives a status LED and prints one telemetry line every few seconds.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/fridge-probe/internal/clock"
	"github.com/sweeney/fridge-probe/internal/config"
	"github.com/sweeney/fridge-probe/internal/gpio"
	"github.com/sweeney/fridge-probe/internal/logic"
	"github.com/sweeney/fridge-probe/internal/probe"
	"github.com/sweeney/fridge-probe/internal/sensor"
	"github.com/sweeney/fridge-probe/internal/telemetry"
)

func main() {
	chip := flag.String("chip", gpio.DefaultChip, "GPIO chip name")
	pinDoor := flag.Int("pin-door", gpio.DefaultPinDoor, "GPIO line for the door reed switch")
	pinLED := flag.Int("pin-led", gpio.DefaultPinLED, "GPIO line for the status LED")
	adc := flag.String("adc", sensor.DefaultADCPath, "IIO sysfs node for the TMP36 channel")
	serialDev := flag.String("serial", "", "Serial device for telemetry (empty for stdout only)")
	baud := flag.Int("baud", 115200, "Serial baud rate")
	tick := flag.Duration("tick", 10*time.Millisecond, "Control loop tick")
	printState := flag.Bool("print-state", false, "Print current state and exit")

	flag.Parse()

	if err := run(*chip, *pinDoor, *pinLED, *adc, *serialDev, *baud, *tick, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(chip string, pinDoor, pinLED int, adcPath, serialDev string, baud int, tick time.Duration, printState bool) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return err
	}

	therm := sensor.NewADCThermometer(adcPath, cfg.Calibration())

	door, err := gpio.NewRealDoorReader(chip, pinDoor)
	if err != nil {
		return fmt.Errorf("init door: %w", err)
	}
	defer door.Close()

	// Print state mode
	if printState {
		return printStateOnce(os.Stdout, cfg, therm, door, nil)
	}

	led, err := gpio.NewRealIndicator(chip, pinLED)
	if err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	// Close drives the LED off before releasing the line.
	defer led.Close()

	var sink telemetry.Sink = telemetry.NewWriterSink(os.Stdout)
	if serialDev != "" {
		sink = telemetry.Multi{sink, telemetry.NewSerialSink(serialDev, baud)}
	}
	defer sink.Close()

	ctrl, err := probe.New(cfg, therm, door, led, sink)
	if err != nil {
		return fmt.Errorf("init controller: %w", err)
	}

	now, err := clock.Monotonic()
	if err != nil {
		return fmt.Errorf("init clock: %w", err)
	}

	log.Printf("started: chip=%s door=%d led=%d adc=%s serial=%q tick=%v sample=%dms telemetry=%dms",
		chip, pinDoor, pinLED, adcPath, serialDev, tick, cfg.SampleIntervalMs, cfg.TelemetryIntervalMs)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(ctrl, now, ticker.C, sigCh)
}

func runLoop(ctrl *probe.Controller, now clock.Millis, tick <-chan time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			snap := ctrl.Snapshot()
			log.Printf("received %v, shutting down: samples=%d status=%s t=%.1fC avg=%.1fC",
				s, snap.Samples, snap.Status, snap.TempC, snap.AvgC)
			return nil

		case <-tick:
			ctrl.Tick(now())
		}
	}
}

// printStateOnce reads the sensors once, debouncing the door with a blocking
// majority batch, and writes a single telemetry line to w.
func printStateOnce(w io.Writer, cfg config.Config, therm probe.Thermometer, door gpio.DoorReader, sleep func(time.Duration)) error {
	temp, err := therm.ReadTemperature()
	if err != nil {
		return fmt.Errorf("read temperature: %w", err)
	}
	valid := therm.IsReadingValid(temp)

	interval := time.Duration(cfg.DebounceIntervalMs) * time.Millisecond
	open, err := gpio.ReadDoorBatch(door, cfg.DebounceSamples, interval, sleep)
	if err != nil {
		return fmt.Errorf("read door: %w", err)
	}

	status := logic.Classify(logic.Input{
		Latest:   temp,
		Average:  temp,
		Valid:    valid,
		DoorOpen: open,
	}, cfg.WarmThresholdC)

	_, err = fmt.Fprintln(w, telemetry.FormatLine(telemetry.Line{
		TempC:    temp,
		AvgC:     temp,
		DoorOpen: open,
		Status:   status,
	}))
	return err
}
