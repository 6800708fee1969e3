// ABOUTME: The demo survey and cursor API walkthrough
// ABOUTME: Exercises every question kind and status line against the live terminal

package main

import (
	"github.com/mauromedda/promptkit-go/pkg/prompt"
	"github.com/mauromedda/promptkit-go/pkg/tui/terminal"
)

type sortingAlgorithm int

const (
	quickSort sortingAlgorithm = iota
	mergeSort
	bubbleSort
	insertionSort
)

var algorithmNames = [...]string{"QuickSort", "MergeSort", "BubbleSort", "InsertionSort"}

func (a sortingAlgorithm) String() string { return algorithmNames[a] }

func (sortingAlgorithm) Values() []sortingAlgorithm {
	return []sortingAlgorithm{quickSort, mergeSort, bubbleSort, insertionSort}
}

// survey asks the demo questions in order.
func survey(p *prompt.Prompt) error {
	if err := p.Alert("Please complete the survey..."); err != nil {
		return err
	}

	name, err := prompt.AskString(p, "What is your name?", prompt.None[string]())
	if err != nil {
		return err
	}
	if err := p.Info("Hello, %s!", name); err != nil {
		return err
	}

	cheese, err := prompt.AskBoolean(p, "Do you like cheese?", prompt.Some(true))
	if err != nil {
		return err
	}
	if cheese {
		err = p.Success("You like cheese!")
	} else {
		err = p.Failure("What is wrong with cheese?!")
	}
	if err != nil {
		return err
	}

	age, err := prompt.AskInteger(p, "How old are you?", prompt.IntegerConfig{
		Required: true,
		Min:      prompt.Some(0),
		Max:      prompt.Some(150),
	})
	if err != nil {
		return err
	}
	if err := p.Success("You are %d years old.", age); err != nil {
		return err
	}

	height, err := prompt.AskFloat(p, "How tall are you?", prompt.FloatConfig{
		Required: true,
		Min:      prompt.Some(0.0),
	})
	if err != nil {
		return err
	}
	unit, err := prompt.AskOption(p, "..and what unit was that?", []string{"metres", "feet"})
	if err != nil {
		return err
	}
	if err := p.Success("You are %g %s tall.", height, unit); err != nil {
		return err
	}

	algo, err := prompt.AskEnum[sortingAlgorithm](p, "Pick a sorting algorithm")
	if err != nil {
		return err
	}
	if err := p.Success("You selected %s.", algo); err != nil {
		return err
	}

	return p.Info("Thank you for your time, %s. Good bye!", name)
}

// cursorDemo saves three positions, then restores and clears them one key
// press at a time.
func cursorDemo(t *terminal.Terminal, p *prompt.Prompt) error {
	if err := p.Alert("This will test the console cursor APIs..."); err != nil {
		return err
	}
	if !t.SupportsNestedSaves() {
		return p.Failure("Skipped: the terminal cannot report the cursor position (mode %s).", t.Mode())
	}

	if err := t.ReserveRows(6); err != nil {
		return err
	}
	if err := t.Write("keepme"); err != nil {
		return err
	}
	c1, err := t.SaveCursor()
	if err != nil {
		return err
	}
	if err := t.Write("eraseme\neraseme\neraseme\neraseme"); err != nil {
		return err
	}
	c2, err := t.SaveCursor()
	if err != nil {
		return err
	}
	if err := t.Write("keepme\nkeepme\n"); err != nil {
		return err
	}
	c3, err := t.SaveCursor()
	if err != nil {
		return err
	}

	steps := []func() error{
		func() error { return c2.Reset(false) },
		func() error { return c1.Reset(true) },
		func() error { return c3.Reset(false) },
	}
	for _, step := range steps {
		if _, err := t.ReadKey(); err != nil {
			return err
		}
		if err := step(); err != nil {
			return err
		}
	}
	return p.Info("Bye!")
}
