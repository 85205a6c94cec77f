package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PromptConfigs holds the prompt templates for the assist endpoints. Each
// template is a fmt string; Debug and Chat take the payload as their single
// argument, RunCode takes the language followed by the code.
type PromptConfigs struct {
	Debug   string `yaml:"debug"`
	Chat    string `yaml:"chat"`
	RunCode string `yaml:"run_code"`
}

const debugPromptTemplate = `You are an expert code debugger and analyzer. Analyze the provided code and format your response in a clear, structured way using Markdown. Include the following sections:

# Code Overview
Provide a brief description of what the code does.

# Issues Found
- List any bugs, errors, or code smells
- Each issue should be on a new line starting with a dash (-)
- Include specific line numbers or sections where issues are found

# Performance Considerations
- List any performance issues or inefficiencies
- Each point should be on a new line starting with a dash (-)
- Include suggestions for optimization

# Best Practices
- List improvements based on modern development standards
- Each point should be on a new line starting with a dash (-)
- Include code examples where relevant

# Security Concerns
- List any security vulnerabilities
- Each point should be on a new line starting with a dash (-)
- Include severity level and potential impact

# Recommendations
Provide specific code improvements with examples in code blocks:

` + "```" + `
// Example of improved code
` + "```" + `

Here is the code to analyze:

%s`

const chatPromptTemplate = `You are a helpful, intelligent assistant. Respond to the following message from a user:

"%s"

Respond in a conversational manner. If the user asks for code, format it properly using Markdown. If the user asks for a list, use Markdown to format it properly. If the user asks for a table, use Markdown to format it properly.`

const runCodePromptTemplate = `Act as a code execution engine. You will be provided with %s code to execute.
Your response must follow this exact format without any additional text or formatting:

Output:
[Print the actual output from executing the code. If there is no output, write "No output"]

Errors or Warnings:
[List any errors or warnings encountered. If none, write "None"]

Explanation:
[Write a brief, clear explanation of what the code does or attempted to do]

Here is the code to execute:
%s

Important rules:
1. Do not include any markdown formatting, code blocks, or special characters
2. Keep the exact section headers: "Output:", "Errors or Warnings:", and "Explanation:"
3. Show the actual output that would appear when running the code
4. If there's an error, explain specifically what caused it
5. Keep explanations clear and concise
6. Do not include any additional sections or text`

// DefaultPromptConfigs returns the built-in prompt templates.
func DefaultPromptConfigs() *PromptConfigs {
	return &PromptConfigs{
		Debug:   debugPromptTemplate,
		Chat:    chatPromptTemplate,
		RunCode: runCodePromptTemplate,
	}
}

// LoadPromptConfigs returns the built-in templates, overlaid with any
// templates defined in the given YAML file. Empty path means defaults only.
func LoadPromptConfigs(path string) (*PromptConfigs, error) {
	cfgs := DefaultPromptConfigs()
	if path == "" {
		return cfgs, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt config file: %w", err)
	}

	var overrides PromptConfigs
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse prompt config file: %w", err)
	}

	if overrides.Debug != "" {
		cfgs.Debug = overrides.Debug
	}
	if overrides.Chat != "" {
		cfgs.Chat = overrides.Chat
	}
	if overrides.RunCode != "" {
		cfgs.RunCode = overrides.RunCode
	}

	return cfgs, nil
}
