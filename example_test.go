package llmmd_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-llmmd"
)

// Example demonstrates one-shot fragment conversion.
func Example() {
	html := llmmd.ParseLLMSyntax(llmmd.Parse("# Hello\n\n[THOUGHT: check the units]"))
	fmt.Print(html)
	// Output:
	// <h1>Hello</h1>
	// <details class="thought-block"><summary>Thinking Process</summary><p>check the units</p></details>
}

// ExampleParse shows nested lists keeping their original numbering.
func ExampleParse() {
	fmt.Print(llmmd.Parse("3. first\n  - detail\n4. second"))
	// Output:
	// <ol>
	//     <li value="3">first
	//   <ul>
	//       <li>detail</li>
	//   </ul></li>
	//     <li value="4">second</li>
	// </ol>
}

// ExampleParseLLMSyntax converts function call annotations into callouts.
func ExampleParseLLMSyntax() {
	fmt.Println(llmmd.ParseLLMSyntax("<p>[FUNCTION_CALL: get_weather(city)]</p>"))
	// Output: <div class="function-call"><strong>Function Call:</strong> get_weather(city)</div>
}

// ExampleConverter_Convert renders a standalone page.
func ExampleConverter_Convert() {
	conv, err := llmmd.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), llmmd.Input{
		Markdown:   "# Release Notes\n\nAll green.",
		Standalone: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	fmt.Println(strings.HasPrefix(string(result.HTML), "<!DOCTYPE html>"))
	// Output:
	// Release Notes
	// true
}

// ExampleErrorDocument renders the document shown for an unusable source.
func ExampleErrorDocument() {
	_, err := llmmd.ReadSource("notes.txt")
	fmt.Print(llmmd.Parse(llmmd.ErrorDocument(err)))
	// Output:
	// <h1>Error</h1>
	// <p>File not found or invalid file type.</p>
}
