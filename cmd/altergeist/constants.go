package main

// DefaultHistoryLimit is the default number of archived responses shown.
const DefaultHistoryLimit = 20
