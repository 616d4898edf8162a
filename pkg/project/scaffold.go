package project

import (
	"fmt"
	"strings"
)

// Scaffold file templates. Versions track the current React and Vite
// majors; the provisioner never rewrites these files once they exist,
// so projects keep their own upgrades.

func packageJSON(name string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^19.0.0",
    "react-dom": "^19.0.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.0",
    "vite": "^6.0.0"
  }
}
`, name)
}

const viteConfig = `import { defineConfig } from 'vite';
import react from '@vitejs/plugin-react';

export default defineConfig({
  plugins: [react()],
});
`

func indexHTML(name string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`, name)
}

const mainJSX = `import React from 'react';
import ReactDOM from 'react-dom/client';
import App from './App';

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
);
`

const appJSX = `import React from 'react';

// Compiled components live in ./components; import them here to
// preview them.
const App = () => (
  <main style={{padding: '24px'}}>
    <h1>Compiled components</h1>
  </main>
);

export default App;
`

// projectName lowercases and hyphenates a display name for use as an
// npm package name.
func projectName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	if n == "" {
		return "design-components"
	}
	return n
}
