package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	g2p "github.com/tantk/kokoro-g2p"
	"github.com/tantk/kokoro-g2p/segment"
)

func main() {
	lang := flag.String("lang", "zh", "language code (zh, es)")
	jiebaDict := flag.String("jieba-dict", "", "path to jieba frequency dictionary (Mandarin only)")
	showTokens := flag.Bool("tokens", false, "also print token ids")

	flag.Parse()

	language, err := g2p.ParseLanguage(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var opts []g2p.Option
	if *jiebaDict != "" {
		seg, err := segment.NewJieba(*jiebaDict)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, g2p.WithSegmenter(seg))
	}

	pipeline, err := g2p.New(language, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		emit(pipeline, strings.Join(flag.Args(), " "), *showTokens)
		return
	}

	// No arguments: phonemize stdin line by line.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		emit(pipeline, scanner.Text(), *showTokens)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func emit(p *g2p.Pipeline, text string, showTokens bool) {
	res := p.Process(text)
	fmt.Println(res.Phonemes)
	if showTokens {
		parts := make([]string, len(res.Tokens))
		for i, id := range res.Tokens {
			parts[i] = fmt.Sprint(id)
		}
		fmt.Fprintf(os.Stderr, "tokens: %s\n", strings.Join(parts, " "))
	}
}
