// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating spectrum pairs from a theme.
//
// This package is an infrastructure adapter: it renders the prompt, makes a
// single GenerateContent call, pulls the text out of the response and hands it
// to generation.Normalize. Nothing Gemini-specific leaks past it.
//
// The genai client is created by the process entry point with NewClient and
// passed in; the generator itself only depends on the ContentGenerator
// interface, which *genai.Models satisfies and tests replace with a fake.
package gemini
