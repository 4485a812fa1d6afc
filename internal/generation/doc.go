// Package generation holds the model-agnostic half of spectrum generation:
// the Generator interface that LLM adapters (Gemini) implement, the prompt
// template used to ask for pairs, and Normalize, which turns a raw model
// reply into exactly the number of validated pairs the caller asked for.
//
// Adapters call Normalize on the text they receive; they never hand raw
// model output past this package.
package generation
