package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/gemalto/flume"
	sfv "github.com/kyori19/net-http-structured-field-values"
)

var log = flume.New("ppsfv")

func main() {

	flag.Usage = func() {
		s := `ppsfv - structured field value pretty printer

Usage:  ppsfv [options] [input]

Parses an HTTP structured field value (RFC 8941) and prints it out as a
typed tree, or re-serialized in its canonical form.

The input argument should be a string.  If not present, input will be
read from standard in.

Examples:

    ppsfv -t dictionary 'a=(1 2), b=3, c=4;aa=bb'
    echo '2; foourl="https://foo.example.com/"' | ppsfv -t item

Output (in 'text' format):

    dictionary (3 members):
      a = innerList (2 items):
        integer: 1
        integer: 2
      b = integer: 3
      c = integer: 4
        ;aa token: bb

canonical format:

    a=(1 2), b=3, c=4;aa=bb
`
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), s)
		flag.PrintDefaults()
	}

	var fieldType string
	var outFormat string
	var inFile string
	var verbose bool
	flag.StringVar(&fieldType, "t", "list", "field type: list|dictionary|item")
	flag.StringVar(&outFormat, "o", "text", "output format: text|canonical")
	flag.StringVar(&inFile, "f", "", "input file name, defaults to stdin")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")

	flag.Parse()

	if verbose {
		flume.Configure(flume.Config{
			Development:  true,
			DefaultLevel: flume.DebugLevel,
		})
	}

	var input string

	if inFile != "" {
		file, err := ioutil.ReadFile(inFile)
		if err != nil {
			fail("error reading input file", err)
		}
		input = string(file)
	} else if inArg := flag.Arg(0); inArg != "" {
		input = inArg
	} else {
		var lines []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fail("error reading standard in", err)
		}
		// multiple lines of the same field combine with a comma
		input = strings.Join(lines, ",")
	}

	log.Debug("parsing input", "fieldType", fieldType, "input", input)

	value, err := sfv.Parse(fieldType, []byte(input))
	if err != nil {
		fail("error parsing input", err)
	}

	switch outFormat {
	case "text":
		out := &strings.Builder{}
		printValue(out, value, "")
		fmt.Print(out.String())
	case "canonical":
		b, err := sfv.Serialize(value)
		if err != nil {
			fail("error serializing value", err)
		}
		fmt.Println(string(b))
	default:
		fail("unsupported output format: "+outFormat, nil)
	}
}

func fail(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, msg+": "+sfv.Details(err))
	} else {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(1)
}

func printValue(out *strings.Builder, value interface{}, indent string) {
	switch v := value.(type) {
	case sfv.Dictionary:
		fmt.Fprintf(out, "%sdictionary (%d members):\n", indent, v.Len())
		v.Range(func(key string, m sfv.Member) bool {
			fmt.Fprintf(out, "%s  %s = ", indent, key)
			printMember(out, m, indent+"  ")
			return true
		})
	case sfv.List:
		fmt.Fprintf(out, "%slist (%d members):\n", indent, len(v))
		for _, m := range v {
			fmt.Fprintf(out, "%s  ", indent)
			printMember(out, m, indent+"  ")
		}
	case sfv.Item:
		printItem(out, v, indent)
	default:
		fmt.Fprintf(out, "%s%v\n", indent, v)
	}
}

func printMember(out *strings.Builder, m sfv.Member, indent string) {
	switch m.Type() {
	case sfv.MemberTypeInnerList:
		il := m.AsInnerList()
		fmt.Fprintf(out, "innerList (%d items):\n", len(il.Items()))
		for _, it := range il.Items() {
			fmt.Fprintf(out, "%s  ", indent)
			printItem(out, it, indent+"  ")
		}
		printParameters(out, il.Parameters(), indent)
	case sfv.MemberTypeItem:
		printItem(out, m.AsItem(), indent)
	}
}

func printItem(out *strings.Builder, it sfv.Item, indent string) {
	fmt.Fprintf(out, "%s: %s\n", it.BareItem().Type(), formatBareItem(it.BareItem()))
	printParameters(out, it.Parameters(), indent)
}

func printParameters(out *strings.Builder, params sfv.Parameters, indent string) {
	if params == nil {
		return
	}
	params.Range(func(key string, value sfv.BareItem) bool {
		fmt.Fprintf(out, "%s  ;%s %s: %s\n", indent, key, value.Type(), formatBareItem(value))
		return true
	})
}

func formatBareItem(bi sfv.BareItem) string {
	switch bi.Type() {
	case sfv.ItemTypeInteger:
		return strconv.FormatInt(bi.AsInteger(), 10)
	case sfv.ItemTypeDecimal:
		return strconv.FormatFloat(bi.AsDecimal(), 'f', -1, 64)
	case sfv.ItemTypeString:
		return strconv.Quote(bi.AsString())
	case sfv.ItemTypeToken:
		return string(bi.AsToken())
	case sfv.ItemTypeByteSequence:
		return hex.EncodeToString(bi.AsByteSequence())
	case sfv.ItemTypeBoolean:
		return strconv.FormatBool(bi.AsBoolean())
	default:
		return "?"
	}
}
