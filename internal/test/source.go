package test

import (
	"math/rand"
	"strings"
)

const validTokens = "def;end;nil;name;other_name;_private;\"this is a string\";'single quoted';\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\";\"\";+;-;*;/;=;(;);,;123;321;\n"

const validStatements = "x = 1 + 2\n|name = 'value'\n|puts(x, \"y\", nil)\n|total = count * 3 - offset / 2\n|f(g(1), h(a = 2))\n|def add(a, b = 1)\n  a + b\nend\n|def empty\nend\n|def greet(name)\n  message = 'hello'\n  puts(message, name)\nend\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

// GetRandomProgram returns size statements or definitions that parse cleanly.
func GetRandomProgram(size int) string {
	valid := strings.Split(validStatements, "|")

	var b strings.Builder
	for i := 0; i < size; i++ {
		b.WriteString(valid[rand.Intn(len(valid))])
	}

	return b.String()
}
