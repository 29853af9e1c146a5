package generator

import (
	"fmt"
	"strings"

	"github.com/meera/gurukul/internal/course"
)

// The prompts and the parsers are a matched pair: each parser only
// recognizes the exact heading grammar its prompt asks for, so changing
// the wording here means changing internal/parse with it.

const outlineSystem = `You are an expert curriculum designer specializing in creating focused, structured learning content.
Always create between 3-5 modules total, no more and no less.`

func outlinePrompt(topic, language string) string {
	return fmt.Sprintf(`Create a focused course outline for the topic: %s.
Language: %s

Create exactly 2-3 modules that cover the essential concepts.
For each module, use this exact markdown format:

### Module [number]: [Title]
#### Title: [Descriptive Title]
#### Description and Key Points:
[Detailed description of the module's content and purpose]

* Learning Objectives:
    + [Objective 1]
    + [Objective 2]
    + [Objective 3]

#### Hands-on Exercise:
[Description of a practical exercise that applies the module's concepts]

Make sure each module includes:
1. A clear, numbered title (1-5 only)
2. A descriptive subtitle
3. A comprehensive description
4. 3-5 specific learning objectives
5. A hands-on exercise

Important: Create no more than 5 modules total.`, topic, language)
}

const moduleSystem = `You are an expert educator creating focused, practical learning content.
Create content that is clear, engaging, and builds understanding step by step.
Use markdown formatting for better readability.`

func modulePrompt(stub course.ModuleStub, language string) string {
	var objectives strings.Builder
	for _, obj := range stub.Objectives {
		fmt.Fprintf(&objectives, "- %s\n", obj)
	}

	return fmt.Sprintf(`Create detailed content for Module: %s
Language: %s

Description: %s

Learning Objectives:
%s
Create the following:
1. Detailed module overview
2. Key concepts (3-5 main points)
3. Learning path recommendations
4. Session breakdown (3-5 sessions)
5. Practical exercises

For each session, include:
- Clear title that reflects the content
- Brief description of what will be covered
- Learning objectives for that session

Format the content using markdown with clear section headers.
Make the content engaging, clear, and focused on practical understanding.`,
		stub.Title, language, stub.Description, objectives.String())
}

const sessionOutlineSystem = `You are an expert in curriculum design.
Create focused, achievable learning sessions that build on each other.
Keep the content practical and engaging.`

func sessionOutlinePrompt(stub course.ModuleStub, language string) string {
	return fmt.Sprintf(`Create 3-5 focused sessions for the module: %s
Language: %s

For each session, use this exact format:

**Session %s.1: [Title]**
* Description: [what the session covers]
* Key Concepts:
    + [concept]
* Visual Elements:
    + [diagram or illustration idea]
* Resources:
    + [reference material]

Number the sessions %s.1, %s.2 and so on.`,
		stub.Title, language, stub.Number, stub.Number, stub.Number)
}

const sessionContentSystem = `You are an expert educator creating focused, practical learning content.
Create content that is clear, engaging, and builds understanding step by step.
Use markdown formatting for better readability.`

func sessionContentPrompt(moduleNumber, sessionNumber, title, language string) string {
	return fmt.Sprintf(`Create detailed content for Session %s of Module %s: %s
Language: %s

Include the following sections:
1. Introduction and Overview
2. Key Concepts (3-5 main points)
3. Detailed Explanations
4. Examples (if relevant)
5. Practice Exercises (2-3 exercises)
6. Additional Resources

Format the content using markdown with clear section headers.
Make the content engaging, clear, and focused on practical understanding.`,
		sessionNumber, moduleNumber, title, language)
}

const assessmentSystem = `You are an expert in creating effective assessments.
Create questions that test both understanding and practical application.
Make questions clear and unambiguous.`

func assessmentPrompt(moduleNumber, sessionNumber, title, language string, questions int) string {
	return fmt.Sprintf(`Create an assessment for Session %s of Module %s: %s
Language: %s

Create %d questions that test understanding of the key concepts.
Include a mix of:
- Multiple choice questions
- Short answer questions
- Practical application questions

For each question, provide:
1. The question text
2. The correct answer
3. Explanation of why it's correct

Do not include any other content other than the questions and answers.`,
		sessionNumber, moduleNumber, title, language, questions)
}
