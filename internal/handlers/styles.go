// SPDX-License-Identifier: MIT
package handlers

// Fallbacks used before any token set has been applied.
const (
	FallbackSurface = "#ffffff"
	FallbackText    = "#0f172a"
	FallbackPrimary = "#3b82f6"
	FallbackBorder  = "#e2e8f0"
)

// GetPreviewCSS returns the preview page stylesheet. Every rule reads the
// applied tokens from /tokens.css, so the page restyles itself whenever the
// selection changes.
func GetPreviewCSS() string {
	return `
* { box-sizing: border-box; }

body {
	font-family: var(--font-sans, system-ui, sans-serif);
	font-size: var(--body-size, 16px);
	background: var(--surface, ` + FallbackSurface + `);
	color: var(--text, ` + FallbackText + `);
	margin: 0;
	padding: 0;
	line-height: 1.5;
	transition: background var(--transition-speed, 300ms) ease, color var(--transition-speed, 300ms) ease;
}

h1 { font-size: var(--h1-size); font-weight: 700; margin: 0 0 var(--spacing-3) 0; }
h2 { font-size: var(--h2-size); font-weight: 600; margin: 0 0 var(--spacing-2) 0; }
h3 { font-size: var(--h3-size); font-weight: 600; margin: 0 0 var(--spacing-2) 0; }
p { margin: 0 0 var(--spacing-3) 0; }
small { font-size: 12px; color: var(--text-secondary); }

a {
	color: var(--primary, ` + FallbackPrimary + `);
	text-decoration: none;
	transition: color var(--transition-speed, 300ms);
}

.page {
	max-width: 1100px;
	margin: 0 auto;
	padding: var(--spacing-6);
}

.banner {
	background: var(--error);
	color: #ffffff;
	padding: var(--spacing-3) var(--spacing-4);
	border-radius: var(--radius);
	margin-bottom: var(--spacing-4);
}

.card {
	background: var(--surface-alt);
	border: var(--border-width, 1px) solid var(--border, ` + FallbackBorder + `);
	border-radius: var(--radius);
	box-shadow: var(--shadow);
	padding: var(--spacing-5);
	margin-bottom: var(--spacing-5);
}

.card:hover { box-shadow: var(--shadow-lg); }

.grid {
	display: grid;
	grid-template-columns: repeat(auto-fill, minmax(160px, 1fr));
	gap: var(--spacing-3);
}

.btn {
	display: inline-block;
	font-family: inherit;
	font-size: 14px;
	font-weight: 600;
	background: var(--primary);
	color: #ffffff;
	border: var(--border-width, 1px) solid var(--border);
	border-radius: var(--radius);
	box-shadow: var(--shadow);
	padding: var(--spacing-2) var(--spacing-4);
	cursor: pointer;
	transition: transform var(--transition-speed, 300ms), box-shadow var(--transition-speed, 300ms);
}

.btn:active { transform: var(--button-transform); }
.btn-success { background: var(--success); }
.btn-warning { background: var(--warning); }
.btn-error { background: var(--error); }
.btn-info { background: var(--info); }

.swatch {
	border: var(--border-width, 1px) solid var(--border);
	border-radius: var(--radius);
	overflow: hidden;
}

.swatch-color { height: 64px; }
.swatch-label { padding: var(--spacing-2); font-size: 13px; }

.badge {
	display: inline-block;
	font-size: 11px;
	font-weight: 700;
	padding: 0 6px;
	border-radius: 4px;
	background: var(--surface);
	border: 1px solid var(--border);
}

.ramp { display: flex; }
.ramp div { flex: 1; height: 40px; }

.data-table {
	width: 100%;
	border-collapse: collapse;
}

.data-table th {
	text-align: left;
	padding: var(--spacing-2) var(--spacing-3);
	border-bottom: 2px solid var(--border);
	font-weight: 600;
}

.data-table td {
	padding: var(--spacing-2) var(--spacing-3);
	border-bottom: 1px solid var(--border);
}

pre {
	background: var(--surface);
	border: 1px solid var(--border);
	border-radius: var(--radius);
	padding: var(--spacing-3);
	overflow-x: auto;
	font-size: 13px;
}

@media (max-width: 600px) {
	.page { padding: var(--spacing-3); }
}
`
}
