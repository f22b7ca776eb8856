package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/linyuze/wordscope/pkg/analysis"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	path := os.Args[1]
	command := os.Args[2]

	set, err := analysis.LoadStopwords(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stopword list: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "add":
		if len(os.Args) < 4 {
			fmt.Println("Error: add requires at least one word")
			os.Exit(1)
		}
		words := set.Words()
		for _, word := range os.Args[3:] {
			if slices.Contains(words, word) {
				fmt.Printf("Already present: %s\n", word)
				continue
			}
			words = append(words, word)
			fmt.Printf("Added: %s\n", word)
		}
		if err := analysis.SaveStopwords(path, words); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving stopword list: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Total words: %d\n", len(words))

	case "remove":
		if len(os.Args) < 4 {
			fmt.Println("Error: remove requires at least one word")
			os.Exit(1)
		}
		words := set.Words()
		for _, word := range os.Args[3:] {
			words = slices.DeleteFunc(words, func(w string) bool { return w == word })
			fmt.Printf("Removed: %s\n", word)
		}
		if err := analysis.SaveStopwords(path, words); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving stopword list: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Total words: %d\n", len(words))

	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a word")
			os.Exit(1)
		}
		word := os.Args[3]
		if set.Contains(word) {
			fmt.Printf("'%s' is in the stopword list\n", word)
		} else {
			fmt.Printf("'%s' is NOT in the stopword list\n", word)
		}

	case "count":
		fmt.Printf("Total words: %d\n", set.Len())

	case "list":
		for _, word := range set.Words() {
			fmt.Println(word)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: stopwordmgr <stopwords_path> <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  add <word>...      Add words to the list")
	fmt.Println("  remove <word>...   Remove words from the list")
	fmt.Println("  contains <word>    Check if a word is in the list")
	fmt.Println("  count              Print the number of words")
	fmt.Println("  list               Print all words")
}
