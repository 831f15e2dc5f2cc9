// QuestDeck is a survival RPG dashboard for the desktop.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/juju/mutex/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abarroso/questdeck/internal/app/body"
	"github.com/abarroso/questdeck/internal/app/layout"
	"github.com/abarroso/questdeck/internal/app/quest"
	"github.com/abarroso/questdeck/internal/app/settings"
	"github.com/abarroso/questdeck/internal/app/snapshot"
	"github.com/abarroso/questdeck/internal/app/ui"
	"github.com/abarroso/questdeck/internal/appdirs"
	"github.com/abarroso/questdeck/internal/singleinstance"
)

const (
	appID       = "io.github.abarroso.questdeck"
	appName     = "questdeck"
	logFileName = "questdeck.log"
)

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	fyneApp := app.NewWithID(appID)
	ad, err := appdirs.New()
	if err != nil {
		log.Fatal(err)
	}
	ad.SetSettings(fyneApp.Storage().RootURI().Path())
	if *showDirsFlag {
		fmt.Printf("Data: %s\n", ad.Data)
		fmt.Printf("Logs: %s\n", ad.Log)
		fmt.Printf("Settings: %s\n", ad.Settings)
		return
	}
	if *uninstallFlag {
		fmt.Print("Are you sure you want to uninstall this app and delete all user files (y/N)?")
		var input string
		fmt.Scanln(&input)
		if strings.ToLower(input) == "y" {
			p := fyneApp.Preferences()
			for _, k := range settings.Keys() {
				p.RemoveValue(k)
			}
			p.RemoveValue(snapshot.KeyLayout)
			p.RemoveValue(snapshot.KeyQuests)
			if err := ad.DeleteAll(); err != nil {
				log.Fatal(err)
			}
			fmt.Println("App uninstalled")
		} else {
			fmt.Println("Aborted")
		}
		return
	}
	if *logFileFlag {
		log.SetOutput(&lumberjack.Logger{
			Filename:   fmt.Sprintf("%s/%s", ad.Log, logFileName),
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	releaser, err := singleinstance.Acquire(appName)
	if errors.Is(err, mutex.ErrTimeout) {
		log.Fatal("Another instance is already running")
	} else if err != nil {
		log.Fatal(err)
	}
	defer releaser.Release()

	st := settings.New(fyneApp.Preferences())
	if !levelFlagGiven() {
		if st.DeveloperMode() {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		} else {
			slog.SetLogLoggerLevel(st.LogLevelSlog())
		}
	}
	ls := layout.New()
	qs := quest.New()
	bs, err := body.New()
	if err != nil {
		log.Fatal(err)
	}
	sn := snapshot.New(fyneApp.Preferences(), ls, qs)

	u := ui.NewBaseUI(fyneApp, st, ls, qs, bs, sn)
	u.Init()
	u.ShowAndRun()
}

func levelFlagGiven() bool {
	given := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "loglevel" {
			given = true
		}
	})
	return given
}
