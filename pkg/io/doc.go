// Package io provides JSON import and export of computed workspace geometry.
//
// # Overview
//
// A [Snapshot] captures, for one or more workspaces, the active layout and
// the current and target geometry of every view after a layout pass. It is
// what `viv layout --format json` prints and what the IPC server returns, and
// it is meant for:
//
//   - Comparing layouts across configuration changes
//   - Driving external tools such as bars or screenshot scripts
//   - Golden files in tests
//
// # JSON Format
//
//	{
//	  "workspaces": [
//	    {
//	      "name": "main",
//	      "output": "HDMI-A-1",
//	      "layout": {"name": "split", "algorithm": "split", "parameter": 0.6},
//	      "views": [
//	        {
//	          "id": "4f1c...",
//	          "title": "editor",
//	          "type": "xdg-shell",
//	          "mapped": true,
//	          "current": {"x": 0, "y": 0, "width": 1152, "height": 1080},
//	          "target":  {"x": 0, "y": 0, "width": 1152, "height": 1080}
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// Workspaces that are not on an output omit "output". A workspace without
// layouts omits "layout".
//
// # Import and Export
//
// Use [Capture] to build a snapshot, then [WriteJSON] or [ExportJSON] to
// encode it. [ReadJSON] and [ImportJSON] decode a snapshot back; they do not
// rebuild workspaces, since surfaces cannot be restored from geometry.
package io
