// Package wordselect picks the longest word from free-form text.
//
// Input is lower-cased and stripped of everything that is not an English
// letter or whitespace before it is split into words. Characters are deleted
// rather than replaced, so "Ab!Cd" yields the single word "abcd". When several
// words share the maximum length, the one with the most vowels wins, and the
// earliest word wins among equal vowel counts.
//
// All functions are pure and safe for concurrent use.
package wordselect
