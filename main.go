package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/events"
)

func main() {
	debug := flag.Bool("debug", false, "dump every table event")
	flag.Parse()

	pterm.DefaultHeader.Println("Blackjack")

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultValue("Player").Show("Your name")
	betInput, _ := pterm.DefaultInteractiveTextInput.WithDefaultValue("100").Show("Your bet")
	bet, err := strconv.Atoi(strings.TrimSpace(betInput))
	if err != nil {
		pterm.Error.Printfln("not a bet amount: %s", betInput)
		os.Exit(1)
	}

	table, err := blackjack.NewTable([]blackjack.Seat{{Name: name, Bet: bet}})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	if *debug {
		table.RegisterEventHandler(events.Debug)
	}

	dealer := table.Dealer()
	if err := dealer.DealInitial(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	player := table.Players()[0]
	playHand(player, dealer)
	if sibling := player.SplitHand(); sibling != nil {
		pterm.Info.Println("Now playing the split hand")
		playHand(sibling, dealer)
	}

	if err := dealer.Play(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Println()
	pterm.Info.Printfln("%s shows %s (%d)", dealer.Name, dealer.Hand(), dealer.Total())
	showResult(player)
	if sibling := player.SplitHand(); sibling != nil {
		showResult(sibling)
	}
}

func playHand(player *blackjack.PlayerHand, dealer *blackjack.Dealer) {
	for !player.IsDone() {
		upcard, _ := dealer.Upcard()
		pterm.Info.Printfln("Dealer shows %s | your hand: %s (%d)", upcard, player.Hand(), player.Total())

		options := []string{"hit", "stand"}
		if player.CanDoubleDown() {
			options = append(options, "double down")
		}
		if player.CanSplit() {
			options = append(options, "split")
		}

		action, _ := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Your move")

		var err error
		switch action {
		case "hit":
			_, err = player.PlayHit()
		case "stand":
			err = player.PlayStand()
		case "double down":
			_, err = player.PlayDoubleDown()
		case "split":
			_, err = player.PlaySplit()
		}
		if err != nil {
			pterm.Error.Println(err)
			return
		}
	}

	if player.IsBust() {
		pterm.Warning.Printfln("%s busts with %s (%d)", player.Name, player.Hand(), player.Total())
	}
}

func showResult(player *blackjack.PlayerHand) {
	result := player.Result()
	line := fmt.Sprintf("%s: %s (%d) -> %s, bet %d", player.Name, player.Hand(), player.Total(), result, player.Bet())
	if result.Wins() {
		pterm.Success.Println(line)
	} else {
		pterm.Info.Println(line)
	}
}
