package urls

// Repository is the project home page.
const Repository = "https://github.com/muurk/tipsplit"

// Issues is where bugs and feature requests are filed.
const Issues = Repository + "/issues"

// Docs is the user guide covering the terminal form, the browser form and
// the calc command.
const Docs = "https://muurk.github.io/tipsplit/"

// ConfigReference documents every key of the preferences file.
const ConfigReference = Docs + "configuration/"
