package assist

import (
	"fmt"
	"strings"

	"github.com/obinna/prepcli/internal/bank"
)

const explanationSystemPrompt = `You are an experienced Nigerian secondary-school tutor preparing students for WAEC, JAMB and NECO. Explain exam answers clearly and briefly, at SS3 level.`

func buildExplanationUserMessage(q bank.Question, userAnswer string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question: %s\n\n", q.Text))
	b.WriteString("Options:\n")
	for i, opt := range q.Options {
		b.WriteString(fmt.Sprintf("%c. %s\n", 'A'+i, opt))
	}
	b.WriteString(fmt.Sprintf("\nCorrect answer: %s\n", q.Correct))
	if userAnswer != "" && userAnswer != q.Correct {
		b.WriteString(fmt.Sprintf("Student's answer: %s\n", userAnswer))
	}

	b.WriteString(`
Instructions:
Explain why the correct answer is correct in 3-6 sentences. If the student picked a wrong option, briefly say why that option is tempting but wrong. Use plain text, no markdown.`)

	return b.String()
}

const exampleSystemPrompt = `You are an experienced Nigerian secondary-school tutor preparing students for WAEC, JAMB and NECO. Create practice problems that reinforce the concept being tested.`

func buildExampleUserMessage(q bank.Question) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question: %s\n\n", q.Text))
	b.WriteString("Options:\n")
	for i, opt := range q.Options {
		b.WriteString(fmt.Sprintf("%c. %s\n", 'A'+i, opt))
	}
	b.WriteString(fmt.Sprintf("\nCorrect answer: %s\n", q.Correct))
	if q.Topic.Name != "" && q.Topic.Name != "Topic" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", q.Topic.Name))
	}

	b.WriteString(`
Instructions:
Create ONE new problem that tests the same concept as the question above but with different values or framing. Provide a step-by-step solution with numbered steps, then the final answer. Use plain text, no markdown.`)

	return b.String()
}
