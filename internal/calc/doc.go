// Package calc implements the calculator engine.
//
// Evaluation is a three stage pipeline. Tokenize turns text such as "√(3+4*2)-π"
// into tokens, expanding square roots into "( operand ) ^ 0.5" and folding a
// leading minus into negative numbers. BuildTree parses the tokens with the
// two-stack operator-precedence algorithm. Evaluate reduces the tree.
//
// Session wraps the pipeline with the input policy of an interactive
// calculator and is what user interfaces drive.
package calc
