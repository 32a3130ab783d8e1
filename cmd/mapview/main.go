package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/infrastructure/poiapi"
	"POI-Map-App/internal/mapview"
)

func main() {
	apiURL := flag.String("api", "http://localhost:3000", "POI-Map-App APIのベースURL")
	trackPath := flag.String("track", "", "位置として再生するGeoJSONファイル（LineStringまたはPointのFeature）")
	interval := flag.Duration("interval", 2*time.Second, "軌跡の再生間隔")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 軌跡が無い場合は測位機能無しとして起動する
	var geolocator mapview.Geolocator
	if *trackPath != "" {
		points, err := mapview.LoadTrackFile(*trackPath)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		track, err := mapview.NewTrackGeolocator(points, *interval)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		geolocator = track
	}

	widget := mapview.NewTerminalWidget(os.Stdout)
	controller := mapview.NewMapViewController(widget, poiapi.NewClient(*apiURL), geolocator)
	if err := controller.Initialize(ctx); err != nil {
		log.Printf("⚠️  %v", err)
		// 位置が無くても初期中心の周辺POIは表示する
		controller.RequestNearby(model.DefaultCenter)
	}
	defer controller.Geolocation().Stop()

	fmt.Println("commands: list | <number> (show details) | quit")
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			controller.Wait()
			return
		case line, ok := <-lines:
			if !ok || line == "quit" {
				controller.Wait()
				return
			}
			handleCommand(widget, line)
		}
	}
}

func handleCommand(widget *mapview.TerminalWidget, line string) {
	switch line {
	case "":
		return
	case "list":
		widget.Render()
		return
	}

	index, err := strconv.Atoi(line)
	if err != nil {
		fmt.Printf("unknown command: %s\n", line)
		return
	}
	if err := widget.Click(index); err != nil {
		fmt.Println(err)
	}
}
